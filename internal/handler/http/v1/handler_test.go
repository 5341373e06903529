package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/Satvik-Mishra/shop_attendance_system/internal/config"
	"github.com/Satvik-Mishra/shop_attendance_system/internal/models"
	"github.com/Satvik-Mishra/shop_attendance_system/internal/service"
	"github.com/Satvik-Mishra/shop_attendance_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler builds a Handler with mocked services and a test router
func newTestHandler(t *testing.T) (*Handler, *mocks.MockAttendanceService, *mocks.MockShopService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	attendanceMock := mocks.NewMockAttendanceService(ctrl)
	shopMock := mocks.NewMockShopService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Silence logs in tests

	cfg := &config.Config{
		AdminAPIKeys:   []string{"test-api-key"},
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}

	handler := NewHandler(attendanceMock, shopMock, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, attendanceMock, shopMock, router
}

// makeRequest is a helper for running HTTP requests against the test router
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func adminKey() map[string]string {
	return map[string]string{"X-API-Key": "test-api-key"}
}

func sessionToken() map[string]string {
	return map[string]string{"X-Session-Token": "session-token"}
}

func expectSession(attendanceMock *mocks.MockAttendanceService) {
	attendanceMock.EXPECT().
		Authenticate(gomock.Any(), "session-token").
		Return(&models.Session{ShopID: "shop-1", UserName: "alice"}, nil).
		Times(1)
}

func TestCreateShop_Success(t *testing.T) {
	_, _, shopMock, router := newTestHandler(t)
	reqBody := CreateShopRequest{
		ID:               "shop-1",
		Name:             "Main Street",
		PIN:              "1234",
		Latitude:         55.75,
		Longitude:        37.61,
		RadiusMeters:     150,
		SubscriptionDays: 30,
	}
	ends := time.Now().UTC().Add(30 * 24 * time.Hour)

	shopMock.EXPECT().
		CreateShop(gomock.Any(), gomock.Any(), 30).
		DoAndReturn(func(_ context.Context, shop *models.Shop, _ int) error {
			shop.SubscriptionEnds = &ends
			shop.CreatedAt = time.Now()
			shop.UpdatedAt = time.Now()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/shops", bytes.NewBuffer(bodyBytes), adminKey())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp ShopResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "shop-1", resp.ID)
	assert.Equal(t, "Main Street", resp.Name)
	require.NotNil(t, resp.SubscriptionEnds)
	// The PIN never leaves the admin API
	assert.NotContains(t, w.Body.String(), "1234")
}

func TestCreateShop_InvalidJSON(t *testing.T) {
	_, _, shopMock, router := newTestHandler(t)

	shopMock.EXPECT().CreateShop(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/shops", bytes.NewBufferString(`{"id": "shop-1"`), adminKey())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateShop_ValidationError(t *testing.T) {
	_, _, shopMock, router := newTestHandler(t)
	reqBody := CreateShopRequest{ // PIN is missing
		ID:        "shop-1",
		Name:      "Main Street",
		Latitude:  55.75,
		Longitude: 37.61,
	}

	shopMock.EXPECT().CreateShop(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/shops", bytes.NewBuffer(bodyBytes), adminKey())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'PIN' failed on the 'required' tag")
}

func TestCreateShop_ServiceError(t *testing.T) {
	_, _, shopMock, router := newTestHandler(t)
	reqBody := CreateShopRequest{
		ID:        "shop-1",
		Name:      "Main Street",
		PIN:       "1234",
		Latitude:  55.75,
		Longitude: 37.61,
	}

	shopMock.EXPECT().
		CreateShop(gomock.Any(), gomock.Any(), 0).
		Return(errors.New("db down")).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/shops", bytes.NewBuffer(bodyBytes), adminKey())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetShop_NotFound(t *testing.T) {
	_, _, shopMock, router := newTestHandler(t)

	shopMock.EXPECT().GetShop(gomock.Any(), "missing").Return(nil, service.ErrShopNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/shops/missing", nil, adminKey())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "shop not found")
}

func TestListShops_Success(t *testing.T) {
	_, _, shopMock, router := newTestHandler(t)
	expected := []*models.Shop{
		{ID: "shop-1", Name: "Main Street"},
		{ID: "shop-2", Name: "Market Square"},
	}

	shopMock.EXPECT().ListShops(gomock.Any(), 1, 10).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/shops?page=1&pageSize=10", nil, adminKey())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ShopResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Main Street", resp[0].Name)
}

func TestRenewSubscription_Success(t *testing.T) {
	_, _, shopMock, router := newTestHandler(t)
	ends := time.Now().UTC().Add(14 * 24 * time.Hour)
	renewed := &models.Shop{ID: "shop-1", Name: "Main Street", SubscriptionEnds: &ends}

	shopMock.EXPECT().RenewSubscription(gomock.Any(), "shop-1", 14).Return(renewed, nil).Times(1)

	bodyBytes, _ := json.Marshal(RenewSubscriptionRequest{Days: 14})
	w := makeRequest(router, "POST", "/api/v1/shops/shop-1/renew", bytes.NewBuffer(bodyBytes), adminKey())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ShopResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.SubscriptionEnds)
}

func TestRenewSubscription_ValidationError(t *testing.T) {
	_, _, shopMock, router := newTestHandler(t)

	shopMock.EXPECT().RenewSubscription(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(RenewSubscriptionRequest{Days: 0})
	w := makeRequest(router, "POST", "/api/v1/shops/shop-1/renew", bytes.NewBuffer(bodyBytes), adminKey())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResetDevice_Success(t *testing.T) {
	_, _, shopMock, router := newTestHandler(t)

	shopMock.EXPECT().ResetDevice(gomock.Any(), "shop-1", "alice").Return(nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/shops/shop-1/users/alice/reset-device", nil, adminKey())

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestResetDevice_UserNotFound(t *testing.T) {
	_, _, shopMock, router := newTestHandler(t)

	shopMock.EXPECT().ResetDevice(gomock.Any(), "shop-1", "ghost").Return(service.ErrUserNotFound).Times(1)

	w := makeRequest(router, "POST", "/api/v1/shops/shop-1/users/ghost/reset-device", nil, adminKey())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "user not found")
}

func TestListUsers_Success(t *testing.T) {
	_, _, shopMock, router := newTestHandler(t)
	users := []*models.User{
		{ShopID: "shop-1", Name: "alice", DeviceHash: "device-abc"},
		{ShopID: "shop-1", Name: "bob", DeviceHash: ""},
	}

	shopMock.EXPECT().ListUsers(gomock.Any(), "shop-1", 1, 10).Return(users, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/shops/shop-1/users", nil, adminKey())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []UserResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.True(t, resp[0].DeviceBound)
	assert.False(t, resp[1].DeviceBound)
	// Raw device hashes stay server-side
	assert.NotContains(t, w.Body.String(), "device-abc")
}

func TestLogin_Success(t *testing.T) {
	_, attendanceMock, _, router := newTestHandler(t)
	reqBody := LoginRequest{
		ShopID:     "shop-1",
		Name:       "alice",
		PIN:        "1234",
		DeviceHash: "device-abc",
	}

	attendanceMock.EXPECT().
		Login(gomock.Any(), "shop-1", "alice", "1234", "device-abc").
		Return("token-1", nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp LoginResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "token-1", resp.Token)
}

func TestLogin_WrongPIN(t *testing.T) {
	_, attendanceMock, _, router := newTestHandler(t)
	reqBody := LoginRequest{
		ShopID:     "shop-1",
		Name:       "alice",
		PIN:        "9999",
		DeviceHash: "device-abc",
	}

	attendanceMock.EXPECT().
		Login(gomock.Any(), "shop-1", "alice", "9999", "device-abc").
		Return("", service.ErrWrongPIN).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "wrong pin")
}

func TestLogin_DeviceMismatch(t *testing.T) {
	_, attendanceMock, _, router := newTestHandler(t)
	reqBody := LoginRequest{
		ShopID:     "shop-1",
		Name:       "alice",
		PIN:        "1234",
		DeviceHash: "device-other",
	}

	attendanceMock.EXPECT().
		Login(gomock.Any(), "shop-1", "alice", "1234", "device-other").
		Return("", service.ErrDeviceMismatch).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "device mismatch")
}

func TestLogin_ValidationError(t *testing.T) {
	_, attendanceMock, _, router := newTestHandler(t)
	reqBody := LoginRequest{ // DeviceHash is missing
		ShopID: "shop-1",
		Name:   "alice",
		PIN:    "1234",
	}

	attendanceMock.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'DeviceHash' failed on the 'required' tag")
}

func TestCheckIn_Success(t *testing.T) {
	_, attendanceMock, _, router := newTestHandler(t)
	expectSession(attendanceMock)
	record := &models.AttendanceRecord{
		ID:             uuid.New(),
		ShopID:         "shop-1",
		UserName:       "alice",
		RecordedAt:     time.Now().UTC(),
		Latitude:       55.75,
		Longitude:      37.61,
		DistanceMeters: 12.5,
		WithinRadius:   true,
	}

	attendanceMock.EXPECT().
		MarkAttendance(gomock.Any(), "shop-1", "alice", 55.75, 37.61, "").
		Return(record, nil).Times(1)

	bodyBytes, _ := json.Marshal(CheckInRequest{Latitude: 55.75, Longitude: 37.61})
	w := makeRequest(router, "POST", "/api/v1/attendance/checkin", bytes.NewBuffer(bodyBytes), sessionToken())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp AttendanceResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "within_radius", resp.Outcome)
	assert.True(t, resp.WithinRadius)
}

func TestCheckIn_AlreadyMarked(t *testing.T) {
	_, attendanceMock, _, router := newTestHandler(t)
	expectSession(attendanceMock)

	attendanceMock.EXPECT().
		MarkAttendance(gomock.Any(), "shop-1", "alice", 55.75, 37.61, "").
		Return(nil, service.ErrAlreadyMarked).Times(1)

	bodyBytes, _ := json.Marshal(CheckInRequest{Latitude: 55.75, Longitude: 37.61})
	w := makeRequest(router, "POST", "/api/v1/attendance/checkin", bytes.NewBuffer(bodyBytes), sessionToken())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already marked today")
}

func TestCheckIn_SubscriptionExpired(t *testing.T) {
	_, attendanceMock, _, router := newTestHandler(t)
	expectSession(attendanceMock)

	attendanceMock.EXPECT().
		MarkAttendance(gomock.Any(), "shop-1", "alice", 55.75, 37.61, "").
		Return(nil, service.ErrSubscriptionExpired).Times(1)

	bodyBytes, _ := json.Marshal(CheckInRequest{Latitude: 55.75, Longitude: 37.61})
	w := makeRequest(router, "POST", "/api/v1/attendance/checkin", bytes.NewBuffer(bodyBytes), sessionToken())

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "subscription expired")
}

func TestCheckIn_MissingCoordinates(t *testing.T) {
	_, attendanceMock, _, router := newTestHandler(t)
	expectSession(attendanceMock)

	attendanceMock.EXPECT().MarkAttendance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(CheckInRequest{})
	w := makeRequest(router, "POST", "/api/v1/attendance/checkin", bytes.NewBuffer(bodyBytes), sessionToken())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "location not yet available")
}

func TestCheckIn_NoSession(t *testing.T) {
	_, attendanceMock, _, router := newTestHandler(t)

	attendanceMock.EXPECT().MarkAttendance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(CheckInRequest{Latitude: 55.75, Longitude: 37.61})
	w := makeRequest(router, "POST", "/api/v1/attendance/checkin", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "session token required")
}

func TestCheckIn_ExpiredSession(t *testing.T) {
	_, attendanceMock, _, router := newTestHandler(t)

	attendanceMock.EXPECT().
		Authenticate(gomock.Any(), "session-token").
		Return(nil, service.ErrSessionNotFound).Times(1)
	attendanceMock.EXPECT().MarkAttendance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(CheckInRequest{Latitude: 55.75, Longitude: 37.61})
	w := makeRequest(router, "POST", "/api/v1/attendance/checkin", bytes.NewBuffer(bodyBytes), sessionToken())

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "session expired or invalid")
}

func TestHistory_Success(t *testing.T) {
	_, attendanceMock, _, router := newTestHandler(t)
	expectSession(attendanceMock)
	records := []*models.AttendanceRecord{
		{ID: uuid.New(), ShopID: "shop-1", UserName: "alice", WithinRadius: true},
		{ID: uuid.New(), ShopID: "shop-1", UserName: "alice", WithinRadius: false},
	}

	attendanceMock.EXPECT().
		History(gomock.Any(), "shop-1", "alice", 1, 10).
		Return(records, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/attendance/history", nil, sessionToken())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []AttendanceResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "within_radius", resp[0].Outcome)
	assert.Equal(t, "outside_radius", resp[1].Outcome)
}

func TestLogout_Success(t *testing.T) {
	_, attendanceMock, _, router := newTestHandler(t)
	expectSession(attendanceMock)

	attendanceMock.EXPECT().Logout(gomock.Any(), "session-token").Return(nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/auth/logout", nil, sessionToken())

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestExportAttendanceCSV_Success(t *testing.T) {
	_, _, shopMock, router := newTestHandler(t)
	records := []*models.AttendanceRecord{
		{
			ID:             uuid.New(),
			ShopID:         "shop-1",
			UserName:       "alice",
			RecordedAt:     time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
			Latitude:       55.75,
			Longitude:      37.61,
			DistanceMeters: 42.5,
			WithinRadius:   true,
		},
	}

	shopMock.EXPECT().ExportAttendance(gomock.Any()).Return(records, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/export/attendance.csv", nil, adminKey())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attendance.csv")
	assert.Contains(t, w.Body.String(), "id,shop_id,user_name,recorded_at,latitude,longitude,distance_m,outcome")
	assert.Contains(t, w.Body.String(), "shop-1,alice,2025-06-01T09:00:00Z")
	assert.Contains(t, w.Body.String(), "within_radius")
}

func TestExportUsersCSV_Success(t *testing.T) {
	_, _, shopMock, router := newTestHandler(t)
	users := []*models.User{
		{ShopID: "shop-1", Name: "alice", DeviceHash: "device-abc", CreatedAt: time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)},
	}

	shopMock.EXPECT().ExportUsers(gomock.Any()).Return(users, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/export/users.csv", nil, adminKey())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "shop_id,name,device_bound,created_at")
	assert.Contains(t, w.Body.String(), "shop-1,alice,true,2025-05-01T08:00:00Z")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAdminKeyAuthMiddleware_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		AdminAPIKeys: []string{"valid-key"},
	}

	router.Use(AdminKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminKeyAuthMiddleware_BearerHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		AdminAPIKeys: []string{"valid-key"},
	}

	router.Use(AdminKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		AdminAPIKeys: []string{"valid-key"},
	}

	router.Use(AdminKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAdminKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		AdminAPIKeys: []string{"valid-key"},
	}

	router.Use(AdminKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
