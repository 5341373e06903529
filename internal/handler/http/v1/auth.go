package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Satvik-Mishra/shop_attendance_system/internal/config"
	"github.com/Satvik-Mishra/shop_attendance_system/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Context keys set by SessionAuthMiddleware
const (
	ctxShopID   = "shop_id"
	ctxUserName = "user_name"
)

// AdminKeyAuthMiddleware authenticates admin requests by API key
func AdminKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Also accept Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		isValid := false
		for _, key := range cfg.AdminAPIKeys {
			if key == apiKey {
				isValid = true
				break
			}
		}

		if !isValid {
			log.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// SessionAuthMiddleware authenticates employee requests by session token and
// places the caller's identity in the request context
func SessionAuthMiddleware(attendanceService service.AttendanceService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Session-Token")
		if token == "" {
			log.Warn("Session token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
			return
		}

		session, err := attendanceService.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrSessionNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired or invalid"})
				return
			}
			log.WithError(err).Error("Failed to authenticate session")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(ctxShopID, session.ShopID)
		c.Set(ctxUserName, session.UserName)
		c.Set("session_token", token)
		c.Next()
	}
}
