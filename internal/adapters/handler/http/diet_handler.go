package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/strivefit-engine/internal/core/services"
)

type DietHandler struct {
	svc *services.DietService
}

func NewDietHandler(svc *services.DietService) *DietHandler {
	return &DietHandler{
		svc: svc,
	}
}

func (h *DietHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/diet/plan", h.Plan)
}

// @Summary Diet plan with calorie target
// @Tags diet
// @Produce json
// @Param goal query string true "Muscle Gain, Fat Loss or Maintenance"
// @Param weight query number true "Weight in kg"
// @Param age query number true "Age in years"
// @Success 200 {object} services.DietPlan
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /diet/plan [get]
func (h *DietHandler) Plan(c *gin.Context) {
	goal := c.Query("goal")
	if goal == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "goal is required"})
		return
	}

	weight, err := strconv.ParseFloat(c.Query("weight"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weight must be a number"})
		return
	}
	age, err := strconv.ParseFloat(c.Query("age"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "age must be a number"})
		return
	}

	plan, err := h.svc.PlanFor(goal, weight, age)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}
