package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/strivefit-engine/internal/core/services"
	"github.com/comitanigiacomo/strivefit-engine/internal/telemetry/metrics"
)

type GoalHandler struct {
	svc     *services.GoalService
	metrics *metrics.Manager
}

func NewGoalHandler(svc *services.GoalService, m *metrics.Manager) *GoalHandler {
	return &GoalHandler{
		svc:     svc,
		metrics: m,
	}
}

type createGoalRequest struct {
	GoalName    string   `json:"goalName" binding:"required"`
	GoalType    string   `json:"goalType"`
	TargetValue *float64 `json:"targetValue"`
} //@name CreateGoal

func (h *GoalHandler) RegisterRoutes(router *gin.RouterGroup) {
	goals := router.Group("/goals")
	{
		goals.GET("", h.List)
		goals.POST("", h.Create)
		goals.POST("/:id/toggle", h.Toggle)
		goals.DELETE("/:id", h.Delete)
	}
}

// @Summary Create a goal
// @Tags goals
// @Accept json
// @Produce json
// @Param body body createGoalRequest true "Goal"
// @Success 201 {object} domain.Goal
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := h.svc.Create(c.Request.Context(), services.CreateGoalInput{
		UserID:      actor.UserID,
		Name:        req.GoalName,
		Type:        req.GoalType,
		TargetValue: req.TargetValue,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// @Summary List goals
// @Tags goals
// @Produce json
// @Success 200 {array} domain.Goal
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	goals, err := h.svc.ListByUserID(c.Request.Context(), actor.UserID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

// Toggle answers 204 when the goal no longer exists.
//
// @Summary Toggle goal completion
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} domain.Goal
// @Success 204 "Goal no longer exists"
// @Failure 409 {object} map[string]string "Concurrent update"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /goals/{id}/toggle [post]
func (h *GoalHandler) Toggle(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	goal, err := h.svc.ToggleCompletion(c.Request.Context(), actor.UserID, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	if goal == nil {
		c.Status(http.StatusNoContent)
		return
	}

	if h.metrics != nil {
		h.metrics.CounterGoalToggles.Inc()
	}
	c.JSON(http.StatusOK, goal)
}

// @Summary Delete a goal
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID"
// @Success 204 "Deleted"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security BearerAuth
// @Router /goals/{id} [delete]
func (h *GoalHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), actor.UserID, c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
