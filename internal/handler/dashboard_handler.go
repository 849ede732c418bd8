package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"kas-dashboard-svc/internal/aggregate"
	"kas-dashboard-svc/internal/service"
	"kas-dashboard-svc/pkg/logger"
	"kas-dashboard-svc/pkg/utils"
)

const (
	frameInterval      = 16 * time.Millisecond
	maxCountUpDuration = 5 * time.Second
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetStats handles GET /api/v1/dashboard/stats
// @Summary Get dashboard statistics
// @Description Get the notification counters. With include_counts=true the member and invoice counters are fetched too.
// @Tags dashboard
// @Produce json
// @Param include_counts query bool false "Also count members and invoices"
// @Success 200 {object} utils.APIResponse{data=service.DashboardStats}
// @Failure 401 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/v1/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	includeCounts := utils.GetBoolQuery(c, "include_counts", false)

	stats, err := h.dashboardService.GetStats(c.Request.Context(), includeCounts)
	if err != nil {
		respondError(c, h.logger, "Failed to retrieve dashboard statistics", err)
		return
	}

	utils.SuccessResponse(c, "Dashboard statistics retrieved successfully", stats)
}

// AnimateStats handles GET /api/v1/dashboard/stats/animate
// @Summary Stream stat card count-up
// @Description Server-sent events: one "frame" event per change of any card value while every card counts up from 0, then a "done" event with the final values.
// @Tags dashboard
// @Produce text/event-stream
// @Param include_counts query bool false "Also animate member and invoice counters"
// @Param duration_ms query int false "Animation duration in milliseconds (default: 800, max: 5000)"
// @Success 200 {string} string "event stream"
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/v1/dashboard/stats/animate [get]
func (h *DashboardHandler) AnimateStats(c *gin.Context) {
	duration := aggregate.DefaultCountUpDuration
	if raw := c.Query("duration_ms"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms < 1 {
			utils.BadRequestResponse(c, "Invalid duration_ms parameter", err)
			return
		}
		duration = time.Duration(ms) * time.Millisecond
		if duration > maxCountUpDuration {
			duration = maxCountUpDuration
		}
	}

	ctx := c.Request.Context()
	stats, err := h.dashboardService.GetStats(ctx, utils.GetBoolQuery(c, "include_counts", false))
	if err != nil {
		respondError(c, h.logger, "Failed to retrieve dashboard statistics", err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	err = h.dashboardService.Animate(ctx, *stats, duration, ticker.C, func(frame service.StatFrame) {
		c.SSEvent("frame", frame)
		c.Writer.Flush()
	})
	if err != nil {
		h.logger.WithError(err).Warn("Stat animation stopped")
		return
	}

	c.SSEvent("done", stats.Cards())
	c.Writer.Flush()
}
