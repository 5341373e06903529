package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateShopRequest DTO for shop creation
// @Description DTO for shop creation
type CreateShopRequest struct {
	ID               string  `json:"id" validate:"required,min=2,max=64"`
	Name             string  `json:"name" validate:"required,min=2,max=255"`
	PIN              string  `json:"pin" validate:"required,min=4,max=12,numeric"`
	Latitude         float64 `json:"latitude" validate:"required,latitude"`
	Longitude        float64 `json:"longitude" validate:"required,longitude"`
	RadiusMeters     float64 `json:"radius_meters" validate:"omitempty,gt=0"`
	SubscriptionDays int     `json:"subscription_days" validate:"omitempty,gt=0"`
}

// UpdateShopRequest DTO for shop update
// @Description DTO for shop update
type UpdateShopRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=255"`
	PIN          string  `json:"pin" validate:"omitempty,min=4,max=12,numeric"`
	Latitude     float64 `json:"latitude" validate:"required,latitude"`
	Longitude    float64 `json:"longitude" validate:"required,longitude"`
	RadiusMeters float64 `json:"radius_meters" validate:"required,gt=0"`
}

// RenewSubscriptionRequest DTO for subscription renewal
// @Description DTO for subscription renewal
type RenewSubscriptionRequest struct {
	Days int `json:"days" validate:"required,gt=0"`
}

// ShopResponse DTO for shop details
// @Description DTO for shop details
type ShopResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Latitude         float64    `json:"latitude"`
	Longitude        float64    `json:"longitude"`
	RadiusMeters     float64    `json:"radius_meters"`
	SubscriptionEnds *time.Time `json:"subscription_ends,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// LoginRequest DTO for employee login
// @Description DTO for employee login
type LoginRequest struct {
	ShopID     string `json:"shop_id" validate:"required"`
	Name       string `json:"name" validate:"required,min=2,max=255"`
	PIN        string `json:"pin" validate:"required"`
	DeviceHash string `json:"device_hash" validate:"required"`
}

// LoginResponse DTO carrying the session token
// @Description DTO carrying the session token
type LoginResponse struct {
	Token string `json:"token"`
}

// CheckInRequest DTO for an attendance submission
// @Description DTO for an attendance submission
type CheckInRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
	SelfieB64 string  `json:"selfie_b64" validate:"omitempty,base64"`
}

// AttendanceResponse DTO for a persisted attendance record
// @Description DTO for a persisted attendance record
type AttendanceResponse struct {
	ID             uuid.UUID `json:"id"`
	ShopID         string    `json:"shop_id"`
	UserName       string    `json:"user_name"`
	RecordedAt     time.Time `json:"recorded_at"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	DistanceMeters float64   `json:"distance_meters"`
	WithinRadius   bool      `json:"within_radius"`
	Outcome        string    `json:"outcome"`
}

// UserResponse DTO for a registered employee
// @Description DTO for a registered employee
type UserResponse struct {
	ShopID      string    `json:"shop_id"`
	Name        string    `json:"name"`
	DeviceBound bool      `json:"device_bound"`
	CreatedAt   time.Time `json:"created_at"`
}
