package models

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecord is an append-only check-in. A record is persisted for both
// outcomes; WithinRadius only flags whether the reported position fell inside
// the shop's geofence.
type AttendanceRecord struct {
	ID             uuid.UUID `json:"id"`
	ShopID         string    `json:"shop_id"`
	UserName       string    `json:"user_name"`
	RecordedAt     time.Time `json:"recorded_at"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	DistanceMeters float64   `json:"distance_meters"`
	WithinRadius   bool      `json:"within_radius"`
	SelfieB64      string    `json:"selfie_b64,omitempty"`
}

// Outcome reports the geofencing result of a check-in.
func (r *AttendanceRecord) Outcome() string {
	if r.WithinRadius {
		return "within_radius"
	}
	return "outside_radius"
}
