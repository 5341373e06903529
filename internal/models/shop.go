package models

import (
	"time"
)

// Shop is a registered check-in location. Employees authenticate against its
// PIN and are geofenced against its center and radius.
type Shop struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	PIN              string     `json:"-"`
	Latitude         float64    `json:"latitude"`
	Longitude        float64    `json:"longitude"`
	RadiusMeters     float64    `json:"radius_meters"`
	SubscriptionEnds *time.Time `json:"subscription_ends,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// DefaultRadiusMeters is applied when a shop is created without a radius.
const DefaultRadiusMeters = 150
