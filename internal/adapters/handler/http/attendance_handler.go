package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/strivefit-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/strivefit-engine/internal/core/domain"
	"github.com/comitanigiacomo/strivefit-engine/internal/core/services"
	"github.com/comitanigiacomo/strivefit-engine/internal/telemetry/metrics"
)

type AttendanceHandler struct {
	svc     *services.AttendanceService
	metrics *metrics.Manager
}

func NewAttendanceHandler(svc *services.AttendanceService, m *metrics.Manager) *AttendanceHandler {
	return &AttendanceHandler{
		svc:     svc,
		metrics: m,
	}
}

type markAttendanceRequest struct {
	Status string `json:"status" binding:"required"`
} //@name MarkAttendance

func (h *AttendanceHandler) RegisterRoutes(router *gin.RouterGroup) {
	attendance := router.Group("/attendance")
	{
		attendance.GET("/calendar", h.Calendar)
		attendance.PUT("/:userId/:date", h.Mark)
	}

	admin := router.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	{
		admin.GET("/attendance", h.Roster)
	}
}

// Calendar defaults to the current UTC month.
//
// @Summary Monthly attendance calendar
// @Tags attendance
// @Produce json
// @Param year query int false "Year, defaults to the current one"
// @Param month query int false "Month 1-12, defaults to the current one"
// @Success 200 {object} domain.MonthCalendar
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /attendance/calendar [get]
func (h *AttendanceHandler) Calendar(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	now := time.Now().UTC()
	year, month := now.Year(), int(now.Month())

	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
			return
		}
		year = v
	}
	if raw := c.Query("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be an integer"})
			return
		}
		month = v
	}

	cal, err := h.svc.Calendar(c.Request.Context(), actor.UserID, year, time.Month(month))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cal)
}

// @Summary Mark attendance for a day
// @Tags attendance
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param date path string true "Day as YYYY-MM-DD"
// @Param body body markAttendanceRequest true "Status"
// @Success 200 {object} domain.DayStatus
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 403 {object} map[string]string "Not allowed"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /attendance/{userId}/{date} [put]
func (h *AttendanceHandler) Mark(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req markAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	day, err := h.svc.Mark(c.Request.Context(), services.MarkAttendanceInput{
		Actor:  actor,
		UserID: c.Param("userId"),
		Date:   c.Param("date"),
		Status: req.Status,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.CounterAttendanceMarks.WithLabelValues(string(day.Status)).Inc()
	}
	c.JSON(http.StatusOK, day)
}

// Roster defaults to today's UTC date.
//
// @Summary Attendance roster for a day
// @Tags attendance
// @Produce json
// @Param date query string false "Day as YYYY-MM-DD, defaults to today"
// @Success 200 {object} domain.Roster
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 403 {object} map[string]string "Admin only"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /admin/attendance [get]
func (h *AttendanceHandler) Roster(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		date = domain.DateKey(time.Now())
	}

	roster, err := h.svc.Roster(c.Request.Context(), actor, date)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, roster)
}
