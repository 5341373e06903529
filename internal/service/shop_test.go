package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Satvik-Mishra/shop_attendance_system/internal/models"
	"github.com/Satvik-Mishra/shop_attendance_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestShopService is a helper that builds a service instance with mocks.
func newTestShopService(t *testing.T) (*shopService, *mocks.MockShopRepository, *mocks.MockUserRepository, *mocks.MockAttendanceRepository) {
	ctrl := gomock.NewController(t)
	shopsMock := mocks.NewMockShopRepository(ctrl)
	usersMock := mocks.NewMockUserRepository(ctrl)
	recordsMock := mocks.NewMockAttendanceRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Silence logs in tests

	svc := NewShopService(shopsMock, usersMock, recordsMock, logger)
	return svc.(*shopService), shopsMock, usersMock, recordsMock
}

func TestCreateShop_DefaultsRadiusAndSubscription(t *testing.T) {
	svc, shopsMock, _, _ := newTestShopService(t)
	ctx := context.Background()
	shop := &models.Shop{ID: "shop-1", Name: "Main Street", PIN: "1234"}

	shopsMock.EXPECT().
		Create(ctx, gomock.Any()).
		Do(func(_ context.Context, s *models.Shop) {
			assert.Equal(t, float64(models.DefaultRadiusMeters), s.RadiusMeters)
			require.NotNil(t, s.SubscriptionEnds)
			assert.WithinDuration(t, time.Now().UTC().Add(30*24*time.Hour), *s.SubscriptionEnds, time.Minute)
		}).Return(nil).Times(1)
	shopsMock.EXPECT().InvalidateShopCache(ctx, "shop-1").Return(nil).Times(1)

	err := svc.CreateShop(ctx, shop, 30)

	require.NoError(t, err)
}

func TestCreateShop_NoSubscriptionDays(t *testing.T) {
	svc, shopsMock, _, _ := newTestShopService(t)
	ctx := context.Background()
	shop := &models.Shop{ID: "shop-1", Name: "Main Street", PIN: "1234", RadiusMeters: 300}

	shopsMock.EXPECT().
		Create(ctx, gomock.Any()).
		Do(func(_ context.Context, s *models.Shop) {
			// An explicit radius is kept, and no expiry means the shop starts gated
			assert.Equal(t, 300.0, s.RadiusMeters)
			assert.Nil(t, s.SubscriptionEnds)
		}).Return(nil).Times(1)
	shopsMock.EXPECT().InvalidateShopCache(ctx, "shop-1").Return(nil).Times(1)

	err := svc.CreateShop(ctx, shop, 0)

	require.NoError(t, err)
}

func TestGetShop_FromCache(t *testing.T) {
	svc, shopsMock, _, _ := newTestShopService(t)
	ctx := context.Background()
	expected := &models.Shop{ID: "shop-1", Name: "Cached"}

	shopsMock.EXPECT().GetShopFromCache(ctx, "shop-1").Return(expected, nil).Times(1)

	shop, err := svc.GetShop(ctx, "shop-1")

	require.NoError(t, err)
	assert.Equal(t, expected, shop)
}

func TestGetShop_FromDB(t *testing.T) {
	svc, shopsMock, _, _ := newTestShopService(t)
	ctx := context.Background()
	expected := &models.Shop{ID: "shop-1", Name: "From DB"}

	shopsMock.EXPECT().GetShopFromCache(ctx, "shop-1").Return(nil, nil).Times(1)
	shopsMock.EXPECT().GetByID(ctx, "shop-1").Return(expected, nil).Times(1)
	shopsMock.EXPECT().SetShopCache(ctx, expected).Return(nil).Times(1)

	shop, err := svc.GetShop(ctx, "shop-1")

	require.NoError(t, err)
	assert.Equal(t, expected, shop)
}

func TestUpdateShop_KeepsPINWhenOmitted(t *testing.T) {
	svc, shopsMock, _, _ := newTestShopService(t)
	ctx := context.Background()
	existing := &models.Shop{ID: "shop-1", Name: "Old", PIN: "1234", RadiusMeters: 150}
	update := &models.Shop{ID: "shop-1", Name: "New", Latitude: 1, Longitude: 2, RadiusMeters: 200}

	shopsMock.EXPECT().GetByID(ctx, "shop-1").Return(existing, nil).Times(1)
	shopsMock.EXPECT().
		Update(ctx, gomock.Any()).
		Do(func(_ context.Context, s *models.Shop) {
			assert.Equal(t, "New", s.Name)
			assert.Equal(t, "1234", s.PIN)
			assert.Equal(t, 200.0, s.RadiusMeters)
		}).Return(nil).Times(1)
	shopsMock.EXPECT().InvalidateShopCache(ctx, "shop-1").Return(nil).Times(1)

	err := svc.UpdateShop(ctx, update)

	require.NoError(t, err)
}

func TestRenewSubscription_ExtendsFromCurrentExpiry(t *testing.T) {
	svc, shopsMock, _, _ := newTestShopService(t)
	ctx := context.Background()
	current := time.Now().UTC().Add(10 * 24 * time.Hour)
	shop := &models.Shop{ID: "shop-1", SubscriptionEnds: &current}

	shopsMock.EXPECT().GetByID(ctx, "shop-1").Return(shop, nil).Times(1)
	shopsMock.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)
	shopsMock.EXPECT().InvalidateShopCache(ctx, "shop-1").Return(nil).Times(1)

	renewed, err := svc.RenewSubscription(ctx, "shop-1", 5)

	require.NoError(t, err)
	require.NotNil(t, renewed.SubscriptionEnds)
	assert.WithinDuration(t, current.Add(5*24*time.Hour), *renewed.SubscriptionEnds, time.Second)
}

func TestRenewSubscription_ExpiredStartsFromNow(t *testing.T) {
	svc, shopsMock, _, _ := newTestShopService(t)
	ctx := context.Background()
	expired := time.Now().UTC().Add(-10 * 24 * time.Hour)
	shop := &models.Shop{ID: "shop-1", SubscriptionEnds: &expired}

	shopsMock.EXPECT().GetByID(ctx, "shop-1").Return(shop, nil).Times(1)
	shopsMock.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)
	shopsMock.EXPECT().InvalidateShopCache(ctx, "shop-1").Return(nil).Times(1)

	renewed, err := svc.RenewSubscription(ctx, "shop-1", 7)

	require.NoError(t, err)
	require.NotNil(t, renewed.SubscriptionEnds)
	assert.WithinDuration(t, time.Now().UTC().Add(7*24*time.Hour), *renewed.SubscriptionEnds, time.Minute)
}

func TestResetDevice_Success(t *testing.T) {
	svc, _, usersMock, _ := newTestShopService(t)
	ctx := context.Background()
	user := &models.User{ShopID: "shop-1", Name: "alice", DeviceHash: "device-abc"}

	usersMock.EXPECT().Get(ctx, "shop-1", "alice").Return(user, nil).Times(1)
	usersMock.EXPECT().UpdateDeviceHash(ctx, "shop-1", "alice", "").Return(nil).Times(1)

	err := svc.ResetDevice(ctx, "shop-1", "alice")

	require.NoError(t, err)
}

func TestResetDevice_UserNotFound(t *testing.T) {
	svc, _, usersMock, _ := newTestShopService(t)
	ctx := context.Background()

	usersMock.EXPECT().Get(ctx, "shop-1", "ghost").Return(nil, nil).Times(1)
	usersMock.EXPECT().UpdateDeviceHash(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.ResetDevice(ctx, "shop-1", "ghost")

	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestListShops_ClampsPagination(t *testing.T) {
	svc, shopsMock, _, _ := newTestShopService(t)
	ctx := context.Background()
	expected := []*models.Shop{{ID: "shop-1"}, {ID: "shop-2"}}

	shopsMock.EXPECT().ListShops(ctx, 1, 20).Return(expected, nil).Times(1)

	shops, err := svc.ListShops(ctx, 0, 1000)

	require.NoError(t, err)
	assert.Equal(t, expected, shops)
}

func TestExportAttendance_RepositoryError(t *testing.T) {
	svc, _, _, recordsMock := newTestShopService(t)
	ctx := context.Background()

	recordsMock.EXPECT().ListAll(ctx).Return(nil, fmt.Errorf("db down")).Times(1)

	records, err := svc.ExportAttendance(ctx)

	require.Error(t, err)
	assert.Nil(t, records)
	assert.ErrorContains(t, err, "could not export attendance")
}
