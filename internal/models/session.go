package models

// Session identifies a logged-in employee. Sessions are held in Redis under
// an opaque token; nothing about them lives in process memory.
type Session struct {
	ShopID   string `json:"shop_id"`
	UserName string `json:"user_name"`
}
