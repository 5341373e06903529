package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_IdenticalPoints(t *testing.T) {
	d := DistanceMeters(12.9716, 77.5946, 12.9716, 77.5946)
	assert.Zero(t, d)
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	a := DistanceMeters(12.9716, 77.5946, 48.8566, 2.3522)
	b := DistanceMeters(48.8566, 2.3522, 12.9716, 77.5946)
	assert.InDelta(t, a, b, 1e-6)
}

func TestDistanceMeters_ShortRange(t *testing.T) {
	// ~0.0045 deg of latitude is roughly 500 m at this latitude.
	d := DistanceMeters(12.9716, 77.5946, 12.9761, 77.5946)
	assert.InDelta(t, 500, d, 10)
	assert.Greater(t, d, 150.0)
}

func TestDistanceMeters_KnownCityPair(t *testing.T) {
	// Paris to London, geodesic distance ~343.9 km.
	d := DistanceMeters(48.8566, 2.3522, 51.5074, -0.1278)
	assert.InDelta(t, 343900, d, 1000)
}

func TestDistanceMeters_EquatorialLine(t *testing.T) {
	// One degree of longitude along the equator is ~111.32 km.
	d := DistanceMeters(0, 0, 0, 1)
	assert.InDelta(t, 111320, d, 100)
}
