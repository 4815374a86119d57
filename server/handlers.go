package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inference-sim/batch-planner/minmax"
	"github.com/inference-sim/batch-planner/planner"
	"github.com/inference-sim/batch-planner/planner/trace"
)

type ScheduleRequest struct {
	Jobs        []planner.Job        `json:"jobs"`
	Constraints *planner.Constraints `json:"constraints" binding:"required"`
}

type ScheduleResponse struct {
	*planner.Plan
	Summary *trace.TraceSummary `json:"summary"`
}

type MinMaxRequest struct {
	Values []float64 `json:"values" binding:"required"`
}

type MinMaxResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Handler serves the planning and min/max endpoints. It holds no state;
// every request is planned from its own body.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Schedule(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := planner.Schedule(req.Jobs, *req.Constraints)
	if err != nil {
		if errors.Is(err, planner.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to schedule jobs"})
		return
	}

	c.JSON(http.StatusOK, ScheduleResponse{Plan: plan, Summary: plan.Summary()})
}

func (h *Handler) MinMax(c *gin.Context) {
	var req MinMaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lo, hi, ok := minmax.Find(req.Values)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "values must not be empty"})
		return
	}
	c.JSON(http.StatusOK, MinMaxResponse{Min: lo, Max: hi})
}

func RegisterRoutes(router *gin.RouterGroup, handler *Handler) {
	router.POST("/schedule", handler.Schedule)
	router.POST("/minmax", handler.MinMax)
}
