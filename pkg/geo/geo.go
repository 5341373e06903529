// Package geo computes geodesic distances between WGS84 coordinates.
package geo

import "math"

// WGS84 ellipsoid parameters.
const (
	semiMajorAxis = 6378137.0
	flattening    = 1 / 298.257223563
	semiMinorAxis = semiMajorAxis * (1 - flattening)
)

const (
	convergence   = 1e-12
	maxIterations = 200
)

// DistanceMeters returns the geodesic distance in meters between two points
// given as (latitude, longitude) in degrees, using Vincenty's inverse formula
// on the WGS84 ellipsoid. The result is symmetric in its arguments.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	diffLon := (lon2 - lon1) * math.Pi / 180

	// Reduced latitudes.
	u1 := math.Atan((1 - flattening) * math.Tan(phi1))
	u2 := math.Atan((1 - flattening) * math.Tan(phi2))
	sinU1, cosU1 := math.Sin(u1), math.Cos(u1)
	sinU2, cosU2 := math.Sin(u2), math.Cos(u2)

	lambda := diffLon
	var sinSigma, cosSigma, sigma, cosSqAlpha, cos2SigmaM float64
	for i := 0; i < maxIterations; i++ {
		sinLambda, cosLambda := math.Sin(lambda), math.Cos(lambda)
		sinSigma = math.Hypot(cosU2*sinLambda, cosU1*sinU2-sinU1*cosU2*cosLambda)
		if sinSigma == 0 {
			return 0 // coincident points
		}
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)

		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha
		if cosSqAlpha == 0 {
			cos2SigmaM = 0 // both points on the equator
		} else {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		}

		c := flattening / 16 * cosSqAlpha * (4 + flattening*(4-3*cosSqAlpha))
		prev := lambda
		lambda = diffLon + (1-c)*flattening*sinAlpha*
			(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))
		if math.Abs(lambda-prev) < convergence {
			break
		}
	}

	uSq := cosSqAlpha * (semiMajorAxis*semiMajorAxis - semiMinorAxis*semiMinorAxis) /
		(semiMinorAxis * semiMinorAxis)
	a := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	b := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := b * sinSigma * (cos2SigmaM + b/4*
		(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
			b/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

	return semiMinorAxis * a * (sigma - deltaSigma)
}
