package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/strivefit-engine/internal/core/calculator"
	"github.com/comitanigiacomo/strivefit-engine/internal/core/domain"
	"github.com/comitanigiacomo/strivefit-engine/internal/core/services"
	"github.com/comitanigiacomo/strivefit-engine/internal/telemetry/metrics"
)

type ProgressHandler struct {
	svc     *services.ProgressService
	metrics *metrics.Manager
}

func NewProgressHandler(svc *services.ProgressService, m *metrics.Manager) *ProgressHandler {
	return &ProgressHandler{
		svc:     svc,
		metrics: m,
	}
}

type measurementsRequest struct {
	Weight  float64 `json:"weight" binding:"required"`
	Chest   float64 `json:"chest" binding:"required"`
	Age     float64 `json:"age" binding:"required"`
	Height  float64 `json:"height" binding:"required"`
	BodyFat float64 `json:"bodyFat" binding:"required"`
} //@name Measurements

func (r measurementsRequest) toDomain() domain.Measurements {
	return domain.Measurements{
		WeightKg:   r.Weight,
		ChestCm:    r.Chest,
		AgeYears:   r.Age,
		HeightCm:   r.Height,
		BodyFatPct: r.BodyFat,
	}
}

func (h *ProgressHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/metrics/preview", h.Preview)
	router.GET("/profile", h.Profile)

	progress := router.Group("/progress")
	{
		progress.POST("", h.Record)
		progress.GET("", h.History)
		progress.GET("/trend", h.Trend)
		progress.DELETE("/:id", h.Delete)
	}
}

// Preview computes fitness score and BMI without storing anything.
//
// @Summary Compute fitness score and BMI
// @Tags metrics
// @Accept json
// @Produce json
// @Param body body measurementsRequest true "Body measurements"
// @Success 200 {object} calculator.Metrics
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /metrics/preview [post]
func (h *ProgressHandler) Preview(c *gin.Context) {
	var req measurementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := calculator.Recompute(req.toDomain())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// @Summary Latest fitness profile
// @Tags progress
// @Produce json
// @Success 200 {object} domain.FitnessProfile
// @Failure 404 {object} map[string]string "No profile yet"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /profile [get]
func (h *ProgressHandler) Profile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	profile, err := h.svc.GetProfile(c.Request.Context(), actor.UserID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// @Summary Record a progress snapshot
// @Tags progress
// @Accept json
// @Produce json
// @Param body body measurementsRequest true "Body measurements"
// @Success 201 {object} domain.ProgressEntry
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /progress [post]
func (h *ProgressHandler) Record(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req measurementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.svc.RecordSnapshot(c.Request.Context(), services.RecordSnapshotInput{
		UserID:       actor.UserID,
		Measurements: req.toDomain(),
	})
	if err != nil {
		handleError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.CounterSnapshots.Inc()
	}
	c.JSON(http.StatusCreated, entry)
}

// @Summary List progress history oldest first
// @Tags progress
// @Produce json
// @Param days query int false "Only entries from the last N days"
// @Success 200 {array} domain.ProgressEntry
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /progress [get]
func (h *ProgressHandler) History(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	days, ok := queryDays(c)
	if !ok {
		return
	}

	entries, err := h.svc.ListHistory(c.Request.Context(), actor.UserID, days)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// @Summary Progress trend over a window
// @Tags progress
// @Produce json
// @Param days query int false "Only entries from the last N days"
// @Success 200 {object} domain.ProgressTrend
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "No profile yet"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /progress/trend [get]
func (h *ProgressHandler) Trend(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	days, ok := queryDays(c)
	if !ok {
		return
	}

	trend, err := h.svc.Trend(c.Request.Context(), actor.UserID, days)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, trend)
}

// @Summary Delete a progress entry
// @Tags progress
// @Produce json
// @Param id path string true "Entry ID"
// @Success 204 "Deleted"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /progress/{id} [delete]
func (h *ProgressHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteEntry(c.Request.Context(), actor.UserID, c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// queryDays reads ?days=N; a missing value means the whole history.
func queryDays(c *gin.Context) (int, bool) {
	raw := c.Query("days")
	if raw == "" {
		return 0, true
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
		return 0, false
	}
	return days, true
}
