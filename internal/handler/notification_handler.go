package handler

import (
	"github.com/gin-gonic/gin"

	"kas-dashboard-svc/internal/service"
	"kas-dashboard-svc/pkg/logger"
	"kas-dashboard-svc/pkg/utils"
)

// PageRequest is the body of PUT .../page. Page is 0-indexed.
type PageRequest struct {
	Page *int `json:"page" example:"1"`
}

// SizeRequest is the body of PUT .../size
type SizeRequest struct {
	Size int `json:"size" example:"20"`
}

// NotificationHandler handles the two paginated notification screens
type NotificationHandler struct {
	notificationService service.NotificationService
	logger              *logger.Logger
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService service.NotificationService, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		logger:              logger,
	}
}

// View handles GET /api/v1/dashboard/notifications and GET /api/v1/notifications
// @Summary Get notification feed
// @Description Current page of a notification feed. The first request loads page 0; later requests return the kept state.
// @Description The dashboard feed is grouped by date, the log feed is rendered as table rows.
// @Tags notifications
// @Produce json
// @Success 200 {object} utils.APIResponse{data=service.NotificationView}
// @Success 202 {object} utils.APIResponse{data=service.NotificationView} "Load already in progress"
// @Failure 401 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/v1/dashboard/notifications [get]
// @Router /api/v1/notifications [get]
func (h *NotificationHandler) View(feed service.NotificationFeed) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := h.notificationService.View(c.Request.Context(), feed)
		respondState(c, h.logger, "Notifications retrieved successfully", view, err)
	}
}

// Refresh handles POST .../notifications/refresh
// @Summary Refresh notification feed
// @Description Reload the current page of a notification feed. A refresh made while a load is running is dropped and answered 202.
// @Tags notifications
// @Produce json
// @Success 200 {object} utils.APIResponse{data=service.NotificationView}
// @Success 202 {object} utils.APIResponse{data=service.NotificationView} "Load already in progress"
// @Failure 502 {object} utils.APIResponse
// @Router /api/v1/dashboard/notifications/refresh [post]
// @Router /api/v1/notifications/refresh [post]
func (h *NotificationHandler) Refresh(feed service.NotificationFeed) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := h.notificationService.Refresh(c.Request.Context(), feed)
		respondState(c, h.logger, "Notifications refreshed successfully", view, err)
	}
}

// SetPage handles PUT .../notifications/page
// @Summary Change notification page
// @Description Move a notification feed to a 0-indexed page and load it
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body PageRequest true "Page"
// @Success 200 {object} utils.APIResponse{data=service.NotificationView}
// @Success 202 {object} utils.APIResponse{data=service.NotificationView} "Load already in progress"
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/v1/dashboard/notifications/page [put]
// @Router /api/v1/notifications/page [put]
func (h *NotificationHandler) SetPage(feed service.NotificationFeed) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PageRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Page == nil {
			utils.BadRequestResponse(c, "Invalid request body, page is required", err)
			return
		}

		view, err := h.notificationService.SetPage(c.Request.Context(), feed, *req.Page)
		respondState(c, h.logger, "Notification page changed successfully", view, err)
	}
}

// SetSize handles PUT .../notifications/size
// @Summary Change notification page size
// @Description Change the page size of a notification feed (5, 10, 20, 50 or 100) and load its first page
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body SizeRequest true "Page size"
// @Success 200 {object} utils.APIResponse{data=service.NotificationView}
// @Success 202 {object} utils.APIResponse{data=service.NotificationView} "Load already in progress"
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/v1/dashboard/notifications/size [put]
// @Router /api/v1/notifications/size [put]
func (h *NotificationHandler) SetSize(feed service.NotificationFeed) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SizeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestResponse(c, "Invalid request body", err)
			return
		}

		view, err := h.notificationService.SetSize(c.Request.Context(), feed, req.Size)
		respondState(c, h.logger, "Notification page size changed successfully", view, err)
	}
}
