package v1

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// @Summary Export attendance records as CSV
// @Description Download every attendance record as a CSV file. Requires admin API key.
// @Tags Export
// @Produce text/csv
// @Security ApiKeyAuth
// @Success 200 {string} string "CSV payload"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /export/attendance.csv [get]
func (h *Handler) exportAttendanceCSV(c *gin.Context) {
	log := h.logger.WithField("method", "exportAttendanceCSV")

	records, err := h.shopService.ExportAttendance(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to export attendance from service")
		h.serviceError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="attendance.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"id", "shop_id", "user_name", "recorded_at", "latitude", "longitude", "distance_m", "outcome"})
	for _, r := range records {
		_ = w.Write([]string{
			r.ID.String(),
			r.ShopID,
			r.UserName,
			r.RecordedAt.UTC().Format(time.RFC3339),
			strconv.FormatFloat(r.Latitude, 'f', -1, 64),
			strconv.FormatFloat(r.Longitude, 'f', -1, 64),
			strconv.FormatFloat(r.DistanceMeters, 'f', 2, 64),
			r.Outcome(),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.WithError(err).Error("Failed to write attendance CSV")
	}
}

// @Summary Export registered users as CSV
// @Description Download every registered employee as a CSV file. Requires admin API key.
// @Tags Export
// @Produce text/csv
// @Security ApiKeyAuth
// @Success 200 {string} string "CSV payload"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /export/users.csv [get]
func (h *Handler) exportUsersCSV(c *gin.Context) {
	log := h.logger.WithField("method", "exportUsersCSV")

	users, err := h.shopService.ExportUsers(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to export users from service")
		h.serviceError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="users.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"shop_id", "name", "device_bound", "created_at"})
	for _, u := range users {
		_ = w.Write([]string{
			u.ShopID,
			u.Name,
			strconv.FormatBool(u.DeviceHash != ""),
			u.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.WithError(err).Error("Failed to write users CSV")
	}
}
