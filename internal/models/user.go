package models

import "time"

// User is an employee identified by (shop, name). DeviceHash is an opaque
// fingerprint bound on first registration; a login from a different device
// is rejected until an admin resets the binding.
type User struct {
	ShopID     string    `json:"shop_id"`
	Name       string    `json:"name"`
	DeviceHash string    `json:"device_hash"`
	CreatedAt  time.Time `json:"created_at"`
}
