package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Satvik-Mishra/shop_attendance_system/internal/config"
	"github.com/Satvik-Mishra/shop_attendance_system/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	attendanceService service.AttendanceService
	shopService       service.ShopService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
	limiter           *ipRateLimiter
}

func NewHandler(attendanceService service.AttendanceService, shopService service.ShopService, logger *logrus.Logger, cfg *config.Config) *Handler {
	limiter := newIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.cleanup()

	return &Handler{
		attendanceService: attendanceService,
		shopService:       shopService,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
		limiter:           limiter,
	}
}

// serviceError maps sentinel service errors onto HTTP responses
func (h *Handler) serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShopNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "shop not found"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, service.ErrWrongPIN):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong pin"})
	case errors.Is(err, service.ErrDeviceMismatch):
		c.JSON(http.StatusForbidden, gin.H{"error": "device mismatch, ask admin to reset device"})
	case errors.Is(err, service.ErrSubscriptionExpired):
		c.JSON(http.StatusForbidden, gin.H{"error": "subscription expired, ask admin to renew"})
	case errors.Is(err, service.ErrAlreadyMarked):
		c.JSON(http.StatusConflict, gin.H{"error": "attendance already marked today"})
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired or invalid"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Create a new shop
// @Description Create a new check-in location. Requires admin API key.
// @Tags Shops
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param shop body CreateShopRequest true "Shop creation request"
// @Success 201 {object} ShopResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /shops [post]
func (h *Handler) createShop(c *gin.Context) {
	var input CreateShopRequest
	log := h.logger.WithField("method", "createShop")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToShopModel(input)
	if err := h.shopService.CreateShop(c.Request.Context(), model, input.SubscriptionDays); err != nil {
		log.WithError(err).Error("Failed to create shop in service")
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToShopResponse(model))
}

// @Summary Get a list of shops
// @Description Get a paginated list of all shops. Requires admin API key.
// @Tags Shops
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} ShopResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /shops [get]
func (h *Handler) listShops(c *gin.Context) {
	log := h.logger.WithField("method", "listShops")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	shops, err := h.shopService.ListShops(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list shops from service")
		h.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToShopResponses(shops))
}

// @Summary Get shop by ID
// @Description Get a single shop by its ID. Requires admin API key.
// @Tags Shops
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Shop ID"
// @Success 200 {object} ShopResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Shop not found"
// @Router /shops/{id} [get]
func (h *Handler) getShop(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getShop").WithField("id", id)

	shop, err := h.shopService.GetShop(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get shop from service")
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToShopResponse(shop))
}

// @Summary Update an existing shop
// @Description Update an existing shop by ID. Requires admin API key.
// @Tags Shops
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Shop ID"
// @Param shop body UpdateShopRequest true "Shop update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Shop not found"
// @Router /shops/{id} [put]
func (h *Handler) updateShop(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateShop").WithField("id", id)

	var input UpdateShopRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToShopModel(input)
	model.ID = id

	if err := h.shopService.UpdateShop(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to update shop in service")
		h.serviceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Renew a shop's subscription
// @Description Extend a shop's subscription by a number of days. Requires admin API key.
// @Tags Shops
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Shop ID"
// @Param renewal body RenewSubscriptionRequest true "Renewal request"
// @Success 200 {object} ShopResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Shop not found"
// @Router /shops/{id}/renew [post]
func (h *Handler) renewSubscription(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "renewSubscription").WithField("id", id)

	var input RenewSubscriptionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shop, err := h.shopService.RenewSubscription(c.Request.Context(), id, input.Days)
	if err != nil {
		log.WithError(err).Error("Failed to renew subscription in service")
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToShopResponse(shop))
}

// @Summary Reset a user's device binding
// @Description Clear the device binding so the user's next login binds a new device. Requires admin API key.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Shop ID"
// @Param name path string true "User name"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Router /shops/{id}/users/{name}/reset-device [post]
func (h *Handler) resetDevice(c *gin.Context) {
	shopID := c.Param("id")
	name := c.Param("name")
	log := h.logger.WithField("method", "resetDevice").WithField("shop_id", shopID).WithField("user", name)

	if err := h.shopService.ResetDevice(c.Request.Context(), shopID, name); err != nil {
		log.WithError(err).Error("Failed to reset device binding in service")
		h.serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List a shop's users
// @Description Get a paginated list of a shop's registered employees. Requires admin API key.
// @Tags Users
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Shop ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /shops/{id}/users [get]
func (h *Handler) listUsers(c *gin.Context) {
	shopID := c.Param("id")
	log := h.logger.WithField("method", "listUsers").WithField("shop_id", shopID)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	users, err := h.shopService.ListUsers(c.Request.Context(), shopID, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list users from service")
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToUserResponses(users))
}

// @Summary List a shop's attendance records
// @Description Get a paginated list of a shop's attendance records, newest first. Requires admin API key.
// @Tags Attendance
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Shop ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} AttendanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /shops/{id}/attendance [get]
func (h *Handler) listShopAttendance(c *gin.Context) {
	shopID := c.Param("id")
	log := h.logger.WithField("method", "listShopAttendance").WithField("shop_id", shopID)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	records, err := h.shopService.ListShopAttendance(c.Request.Context(), shopID, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list shop attendance from service")
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAttendanceResponses(records))
}

// @Summary Employee login
// @Description Verify shop PIN and device binding, registering the user on first login. Returns a session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param login body LoginRequest true "Login request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Wrong PIN"
// @Failure 403 {object} map[string]string "Device mismatch"
// @Failure 404 {object} map[string]string "Shop not found"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.attendanceService.Login(c.Request.Context(), input.ShopID, input.Name, input.PIN, input.DeviceHash)
	if err != nil {
		log.WithError(err).Warn("Login failed")
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// @Summary Employee logout
// @Description Delete the caller's session.
// @Tags Auth
// @Produce json
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	token := c.GetString("session_token")
	if err := h.attendanceService.Logout(c.Request.Context(), token); err != nil {
		h.logger.WithError(err).Error("Failed to delete session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Submit attendance
// @Description Evaluate the caller's position against the shop geofence and persist the check-in. Both within-radius and outside-radius outcomes are recorded.
// @Tags Attendance
// @Accept json
// @Produce json
// @Param checkin body CheckInRequest true "Check-in request"
// @Success 201 {object} AttendanceResponse
// @Failure 400 {object} map[string]string "Location not yet available or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Subscription expired"
// @Failure 409 {object} map[string]string "Already marked today"
// @Router /attendance/checkin [post]
func (h *Handler) checkIn(c *gin.Context) {
	shopID := c.GetString(ctxShopID)
	userName := c.GetString(ctxUserName)
	log := h.logger.WithField("method", "checkIn").WithField("shop_id", shopID).WithField("user", userName)

	var input CheckInRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		// Missing coordinates mean the client has no position fix yet;
		// the caller retries once location is available
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "location not yet available: " + err.Error()})
		return
	}

	record, err := h.attendanceService.MarkAttendance(c.Request.Context(), shopID, userName, input.Latitude, input.Longitude, input.SelfieB64)
	if err != nil {
		log.WithError(err).Warn("Attendance submission rejected")
		h.serviceError(c, err)
		return
	}

	observeCheckin(record.Outcome())
	c.JSON(http.StatusCreated, ModelToAttendanceResponse(record))
}

// @Summary Attendance history
// @Description Get the caller's attendance records, newest first.
// @Tags Attendance
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} AttendanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /attendance/history [get]
func (h *Handler) history(c *gin.Context) {
	shopID := c.GetString(ctxShopID)
	userName := c.GetString(ctxUserName)
	log := h.logger.WithField("method", "history").WithField("shop_id", shopID).WithField("user", userName)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	records, err := h.attendanceService.History(c.Request.Context(), shopID, userName, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list attendance history")
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAttendanceResponses(records))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
