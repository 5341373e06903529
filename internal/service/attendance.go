package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Satvik-Mishra/shop_attendance_system/internal/models"
	"github.com/Satvik-Mishra/shop_attendance_system/internal/webhook"
	"github.com/Satvik-Mishra/shop_attendance_system/pkg/geo"
	"github.com/sirupsen/logrus"
)

// ShopRepository defines the storage contract for shops
type ShopRepository interface {
	Create(ctx context.Context, shop *models.Shop) error
	GetByID(ctx context.Context, id string) (*models.Shop, error)
	Update(ctx context.Context, shop *models.Shop) error
	ListShops(ctx context.Context, page, pageSize int) ([]*models.Shop, error)
	GetShopFromCache(ctx context.Context, id string) (*models.Shop, error)
	SetShopCache(ctx context.Context, shop *models.Shop) error
	InvalidateShopCache(ctx context.Context, id string) error
}

// UserRepository defines the storage contract for employees.
// Get returns (nil, nil) when the user does not exist.
type UserRepository interface {
	Get(ctx context.Context, shopID, name string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	ListByShop(ctx context.Context, shopID string, page, pageSize int) ([]*models.User, error)
	ListAll(ctx context.Context) ([]*models.User, error)
	UpdateDeviceHash(ctx context.Context, shopID, name, deviceHash string) error
}

// AttendanceRepository defines the storage contract for attendance records.
// Insert returns ErrAlreadyMarked when the per-day uniqueness guard trips.
type AttendanceRepository interface {
	Insert(ctx context.Context, record *models.AttendanceRecord) error
	HasRecordOnDay(ctx context.Context, shopID, userName string, day time.Time) (bool, error)
	ListByUser(ctx context.Context, shopID, userName string, page, pageSize int) ([]*models.AttendanceRecord, error)
	ListByShop(ctx context.Context, shopID string, page, pageSize int) ([]*models.AttendanceRecord, error)
	ListAll(ctx context.Context) ([]*models.AttendanceRecord, error)
}

// SessionStore holds employee sessions under opaque tokens
type SessionStore interface {
	Create(ctx context.Context, session *models.Session) (string, error)
	Get(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}

// AttendanceService defines the business logic for employee check-ins
type AttendanceService interface {
	Login(ctx context.Context, shopID, name, pin, deviceHash string) (string, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*models.Session, error)
	MarkAttendance(ctx context.Context, shopID, userName string, lat, lon float64, selfieB64 string) (*models.AttendanceRecord, error)
	History(ctx context.Context, shopID, userName string, page, pageSize int) ([]*models.AttendanceRecord, error)
}

type attendanceService struct {
	shops     ShopRepository
	users     UserRepository
	records   AttendanceRepository
	sessions  SessionStore
	publisher webhook.Publisher
	logger    *logrus.Logger
}

func NewAttendanceService(
	shops ShopRepository,
	users UserRepository,
	records AttendanceRepository,
	sessions SessionStore,
	publisher webhook.Publisher,
	logger *logrus.Logger,
) AttendanceService {
	return &attendanceService{
		shops:     shops,
		users:     users,
		records:   records,
		sessions:  sessions,
		publisher: publisher,
		logger:    logger,
	}
}

// SubscriptionActive reports whether the shop's subscription is active at the
// given instant. A missing expiry fails closed. Both sides of the comparison
// are normalized to UTC, and the expiry must be strictly in the future.
func SubscriptionActive(shop *models.Shop, now time.Time) bool {
	if shop.SubscriptionEnds == nil {
		return false
	}
	return shop.SubscriptionEnds.UTC().After(now.UTC())
}

// Login verifies the shop PIN and the device binding, registering the user on
// first login. It returns an opaque session token.
func (s *attendanceService) Login(ctx context.Context, shopID, name, pin, deviceHash string) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "attendance",
		"method":  "Login",
		"shop_id": shopID,
		"user":    name,
	})
	log.Info("Employee login attempt")

	shop, err := s.getShop(ctx, shopID)
	if err != nil {
		return "", err
	}

	// PINs are compared as strings, matching how they are entered
	if pin != shop.PIN {
		log.Warn("Wrong PIN")
		return "", ErrWrongPIN
	}

	user, err := s.users.Get(ctx, shopID, name)
	if err != nil {
		log.WithError(err).Error("Failed to load user")
		return "", fmt.Errorf("service: could not load user: %w", err)
	}

	switch {
	case user == nil:
		// First login registers the user and binds the device
		user = &models.User{ShopID: shopID, Name: name, DeviceHash: deviceHash}
		if err := s.users.Create(ctx, user); err != nil {
			log.WithError(err).Error("Failed to register user")
			return "", fmt.Errorf("service: could not register user: %w", err)
		}
		log.Info("New user registered")
	case user.DeviceHash == "":
		// Binding was reset by an admin; bind the presented device
		if err := s.users.UpdateDeviceHash(ctx, shopID, name, deviceHash); err != nil {
			log.WithError(err).Error("Failed to rebind device")
			return "", fmt.Errorf("service: could not rebind device: %w", err)
		}
		log.Info("Device rebound after admin reset")
	case user.DeviceHash != deviceHash:
		log.Warn("Device hash mismatch")
		return "", ErrDeviceMismatch
	}

	token, err := s.sessions.Create(ctx, &models.Session{ShopID: shopID, UserName: name})
	if err != nil {
		log.WithError(err).Error("Failed to create session")
		return "", fmt.Errorf("service: could not create session: %w", err)
	}

	log.Info("Login successful")
	return token, nil
}

// Logout removes the session for the given token
func (s *attendanceService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("service: could not delete session: %w", err)
	}
	return nil
}

// Authenticate resolves a session token to the employee identity
func (s *attendanceService) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// hasAttendedToday reports whether the user already has a record for the UTC
// calendar day of now. Any record counts, inside or outside the radius.
func (s *attendanceService) hasAttendedToday(ctx context.Context, shopID, userName string, now time.Time) (bool, error) {
	return s.records.HasRecordOnDay(ctx, shopID, userName, now.UTC())
}

// MarkAttendance runs the eligibility checks and persists the check-in.
// Both within-radius and outside-radius outcomes persist a record carrying
// the computed geodesic distance; outside-radius additionally queues a
// webhook alert.
func (s *attendanceService) MarkAttendance(ctx context.Context, shopID, userName string, lat, lon float64, selfieB64 string) (*models.AttendanceRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "attendance",
		"method":  "MarkAttendance",
		"shop_id": shopID,
		"user":    userName,
	})
	log.Info("Evaluating attendance submission")

	shop, err := s.getShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if !SubscriptionActive(shop, now) {
		log.Warn("Subscription expired")
		return nil, ErrSubscriptionExpired
	}

	attended, err := s.hasAttendedToday(ctx, shopID, userName, now)
	if err != nil {
		log.WithError(err).Error("Failed to check today's attendance")
		return nil, fmt.Errorf("service: could not check today's attendance: %w", err)
	}
	if attended {
		log.Info("Attendance already marked today")
		return nil, ErrAlreadyMarked
	}

	distance := geo.DistanceMeters(lat, lon, shop.Latitude, shop.Longitude)
	record := &models.AttendanceRecord{
		ShopID:         shopID,
		UserName:       userName,
		RecordedAt:     now,
		Latitude:       lat,
		Longitude:      lon,
		DistanceMeters: distance,
		WithinRadius:   distance <= shop.RadiusMeters,
		SelfieB64:      selfieB64,
	}

	if err := s.records.Insert(ctx, record); err != nil {
		// The per-day unique index is the arbiter for concurrent submissions
		if errors.Is(err, ErrAlreadyMarked) {
			log.Info("Concurrent submission lost the per-day uniqueness race")
			return nil, ErrAlreadyMarked
		}
		log.WithError(err).Error("Failed to insert attendance record")
		return nil, fmt.Errorf("service: could not save attendance: %w", err)
	}

	log.WithFields(logrus.Fields{
		"distance_m":    distance,
		"within_radius": record.WithinRadius,
	}).Info("Attendance recorded")

	if !record.WithinRadius {
		event := webhook.Event{
			ShopID:         shopID,
			UserName:       userName,
			Latitude:       lat,
			Longitude:      lon,
			DistanceMeters: distance,
			RadiusMeters:   shop.RadiusMeters,
			Timestamp:      now,
		}
		// Alert delivery is best effort; the record is already persisted
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Warn("Failed to queue out-of-radius alert")
		}
	}

	return record, nil
}

// History returns the user's attendance records, newest first
func (s *attendanceService) History(ctx context.Context, shopID, userName string, page, pageSize int) ([]*models.AttendanceRecord, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	records, err := s.records.ListByUser(ctx, shopID, userName, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("service: could not list attendance history: %w", err)
	}
	return records, nil
}

// getShop loads a shop cache-first, falling back to the database
func (s *attendanceService) getShop(ctx context.Context, shopID string) (*models.Shop, error) {
	cached, err := s.shops.GetShopFromCache(ctx, shopID)
	if err != nil {
		s.logger.WithError(err).Warn("Shop cache lookup failed")
	}
	if cached != nil {
		return cached, nil
	}

	shop, err := s.shops.GetByID(ctx, shopID)
	if err != nil {
		return nil, err
	}

	if err := s.shops.SetShopCache(ctx, shop); err != nil {
		s.logger.WithError(err).Warn("Failed to cache shop")
	}
	return shop, nil
}
