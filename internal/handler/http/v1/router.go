package v1

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the v1 API onto the given router group
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	rateLimited := h.limiter.Middleware()
	session := SessionAuthMiddleware(h.attendanceService, h.logger)

	auth := api.Group("/auth")
	{
		auth.POST("/login", rateLimited, h.login)
		auth.POST("/logout", session, h.logout)
	}

	attendance := api.Group("/attendance", session)
	{
		attendance.POST("/checkin", rateLimited, h.checkIn)
		attendance.GET("/history", h.history)
	}

	admin := api.Group("/", AdminKeyAuthMiddleware(h.cfg, h.logger))
	{
		shops := admin.Group("/shops")
		{
			shops.POST("", h.createShop)
			shops.GET("", h.listShops)
			shops.GET("/:id", h.getShop)
			shops.PUT("/:id", h.updateShop)
			shops.POST("/:id/renew", h.renewSubscription)
			shops.GET("/:id/users", h.listUsers)
			shops.POST("/:id/users/:name/reset-device", h.resetDevice)
			shops.GET("/:id/attendance", h.listShopAttendance)
		}

		export := admin.Group("/export")
		{
			export.GET("/attendance.csv", h.exportAttendanceCSV)
			export.GET("/users.csv", h.exportUsersCSV)
		}
	}

	api.GET("/system/health", h.healthCheck)
}
