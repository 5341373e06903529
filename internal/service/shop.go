package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Satvik-Mishra/shop_attendance_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ShopService defines the admin-facing business logic
type ShopService interface {
	CreateShop(ctx context.Context, shop *models.Shop, subscriptionDays int) error
	GetShop(ctx context.Context, id string) (*models.Shop, error)
	UpdateShop(ctx context.Context, shop *models.Shop) error
	ListShops(ctx context.Context, page, pageSize int) ([]*models.Shop, error)
	RenewSubscription(ctx context.Context, id string, days int) (*models.Shop, error)
	ResetDevice(ctx context.Context, shopID, userName string) error
	ListUsers(ctx context.Context, shopID string, page, pageSize int) ([]*models.User, error)
	ListShopAttendance(ctx context.Context, shopID string, page, pageSize int) ([]*models.AttendanceRecord, error)
	ExportAttendance(ctx context.Context) ([]*models.AttendanceRecord, error)
	ExportUsers(ctx context.Context) ([]*models.User, error)
}

type shopService struct {
	shops   ShopRepository
	users   UserRepository
	records AttendanceRepository
	logger  *logrus.Logger
}

func NewShopService(shops ShopRepository, users UserRepository, records AttendanceRepository, logger *logrus.Logger) ShopService {
	return &shopService{
		shops:   shops,
		users:   users,
		records: records,
		logger:  logger,
	}
}

// CreateShop registers a new check-in location. The radius defaults to 150 m
// and the subscription runs from now for the given number of days.
func (s *shopService) CreateShop(ctx context.Context, shop *models.Shop, subscriptionDays int) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "shop",
		"method":  "CreateShop",
		"shop_id": shop.ID,
	})
	log.Info("Creating shop")

	if shop.RadiusMeters <= 0 {
		shop.RadiusMeters = models.DefaultRadiusMeters
	}
	if subscriptionDays > 0 {
		ends := time.Now().UTC().Add(time.Duration(subscriptionDays) * 24 * time.Hour)
		shop.SubscriptionEnds = &ends
	}

	if err := s.shops.Create(ctx, shop); err != nil {
		log.WithError(err).Error("Failed to create shop in repository")
		return fmt.Errorf("service: could not create shop: %w", err)
	}

	if err := s.shops.InvalidateShopCache(ctx, shop.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate shop cache")
	}

	log.Info("Shop created successfully")
	return nil
}

// GetShop fetches a shop by ID, cache-first
func (s *shopService) GetShop(ctx context.Context, id string) (*models.Shop, error) {
	cached, err := s.shops.GetShopFromCache(ctx, id)
	if err != nil {
		s.logger.WithError(err).Warn("Shop cache lookup failed")
	}
	if cached != nil {
		return cached, nil
	}

	shop, err := s.shops.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.shops.SetShopCache(ctx, shop); err != nil {
		s.logger.WithError(err).Warn("Failed to cache shop")
	}
	return shop, nil
}

// UpdateShop replaces the mutable shop fields
func (s *shopService) UpdateShop(ctx context.Context, shop *models.Shop) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "shop",
		"method":  "UpdateShop",
		"shop_id": shop.ID,
	})

	existing, err := s.shops.GetByID(ctx, shop.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent shop")
		return err
	}

	existing.Name = shop.Name
	if shop.PIN != "" {
		existing.PIN = shop.PIN
	}
	existing.Latitude = shop.Latitude
	existing.Longitude = shop.Longitude
	existing.RadiusMeters = shop.RadiusMeters

	if err := s.shops.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update shop in repository")
		return fmt.Errorf("service: could not update shop: %w", err)
	}

	if err := s.shops.InvalidateShopCache(ctx, shop.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate shop cache")
	}

	log.Info("Shop updated successfully")
	return nil
}

// ListShops returns shops with pagination
func (s *shopService) ListShops(ctx context.Context, page, pageSize int) ([]*models.Shop, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	shops, err := s.shops.ListShops(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("service: could not list shops: %w", err)
	}
	return shops, nil
}

// RenewSubscription extends a shop's subscription by the given number of
// days. An active subscription is extended from its current expiry, an
// expired or missing one from now.
func (s *shopService) RenewSubscription(ctx context.Context, id string, days int) (*models.Shop, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "shop",
		"method":  "RenewSubscription",
		"shop_id": id,
		"days":    days,
	})
	log.Info("Renewing subscription")

	shop, err := s.shops.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	base := now
	if shop.SubscriptionEnds != nil && shop.SubscriptionEnds.UTC().After(now) {
		base = shop.SubscriptionEnds.UTC()
	}
	ends := base.Add(time.Duration(days) * 24 * time.Hour)
	shop.SubscriptionEnds = &ends

	if err := s.shops.Update(ctx, shop); err != nil {
		log.WithError(err).Error("Failed to update subscription in repository")
		return nil, fmt.Errorf("service: could not renew subscription: %w", err)
	}

	if err := s.shops.InvalidateShopCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate shop cache")
	}

	log.WithField("subscription_ends", ends).Info("Subscription renewed")
	return shop, nil
}

// ResetDevice clears a user's device binding so their next login can bind a
// new device
func (s *shopService) ResetDevice(ctx context.Context, shopID, userName string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "shop",
		"method":  "ResetDevice",
		"shop_id": shopID,
		"user":    userName,
	})

	user, err := s.users.Get(ctx, shopID, userName)
	if err != nil {
		log.WithError(err).Error("Failed to load user")
		return fmt.Errorf("service: could not load user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.users.UpdateDeviceHash(ctx, shopID, userName, ""); err != nil {
		log.WithError(err).Error("Failed to reset device binding")
		return fmt.Errorf("service: could not reset device binding: %w", err)
	}

	log.Info("Device binding reset")
	return nil
}

// ListUsers returns a shop's employees with pagination
func (s *shopService) ListUsers(ctx context.Context, shopID string, page, pageSize int) ([]*models.User, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	users, err := s.users.ListByShop(ctx, shopID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("service: could not list users: %w", err)
	}
	return users, nil
}

// ListShopAttendance returns a shop's attendance records with pagination
func (s *shopService) ListShopAttendance(ctx context.Context, shopID string, page, pageSize int) ([]*models.AttendanceRecord, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	records, err := s.records.ListByShop(ctx, shopID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("service: could not list shop attendance: %w", err)
	}
	return records, nil
}

// ExportAttendance returns every attendance record for the CSV projection
func (s *shopService) ExportAttendance(ctx context.Context) ([]*models.AttendanceRecord, error) {
	records, err := s.records.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not export attendance: %w", err)
	}
	return records, nil
}

// ExportUsers returns every registered user for the CSV projection
func (s *shopService) ExportUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not export users: %w", err)
	}
	return users, nil
}
