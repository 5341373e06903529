package service

import "errors"

// Sentinel errors for user-facing failure conditions. All of them are
// one-shot: they are reported to the caller and never retried internally.
var (
	ErrShopNotFound        = errors.New("shop not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrWrongPIN            = errors.New("wrong pin")
	ErrDeviceMismatch      = errors.New("device mismatch")
	ErrSubscriptionExpired = errors.New("subscription expired")
	ErrAlreadyMarked       = errors.New("attendance already marked today")
	ErrSessionNotFound     = errors.New("session not found")
)
