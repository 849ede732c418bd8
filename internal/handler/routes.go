package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"kas-dashboard-svc/internal/middleware"
	"kas-dashboard-svc/internal/service"
	"kas-dashboard-svc/internal/session"
	"kas-dashboard-svc/pkg/logger"
)

// Services groups the services exposed over HTTP
type Services struct {
	Auth         service.AuthService
	Dashboard    service.DashboardService
	Notification service.NotificationService
	Member       service.MemberService
	Invoice      service.InvoiceService
	Rekapan      service.RekapanService
}

// SetupRoutes sets up all API routes
func SetupRoutes(router *gin.Engine, services Services, sessions *session.Store, logger *logger.Logger) {
	// Initialize handlers
	authHandler := NewAuthHandler(services.Auth, logger)
	dashboardHandler := NewDashboardHandler(services.Dashboard, logger)
	notificationHandler := NewNotificationHandler(services.Notification, logger)
	memberHandler := NewMemberHandler(services.Member, logger)
	invoiceHandler := NewInvoiceHandler(services.Invoice, logger)
	rekapanHandler := NewRekapanHandler(services.Rekapan, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/session", authHandler.GetSession)
		}

		// Everything below needs an active session
		protected := v1.Group("")
		protected.Use(middleware.RequireSession(sessions))

		// Dashboard routes
		dashboard := protected.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardHandler.GetStats)
			dashboard.GET("/stats/animate", dashboardHandler.AnimateStats)
			registerNotificationFeed(dashboard.Group("/notifications"), notificationHandler, service.FeedDashboard)
		}

		// Notification log routes
		registerNotificationFeed(protected.Group("/notifications"), notificationHandler, service.FeedLog)

		// Member routes
		members := protected.Group("/members")
		{
			members.GET("", memberHandler.ListMembers)
			members.POST("", memberHandler.CreateMember)
			members.GET("/active", memberHandler.ListActiveMembers)
			members.GET("/:id", memberHandler.GetMember)
			members.PUT("/:id", memberHandler.UpdateMember)
			members.DELETE("/:id", memberHandler.DeleteMember)
		}

		// Invoice routes
		invoices := protected.Group("/invoices")
		{
			invoices.GET("", invoiceHandler.ListInvoices)
			invoices.POST("", invoiceHandler.CreateInvoice)
			invoices.GET("/:id", invoiceHandler.GetInvoice)
			invoices.POST("/:id/approve", invoiceHandler.ApproveInvoice)
			invoices.POST("/:id/upload", invoiceHandler.UploadPaymentProof)
		}

		// Rekapan routes
		rekapan := protected.Group("/rekapan")
		{
			rekapan.GET("", rekapanHandler.GetRekapan)
			rekapan.GET("/export", rekapanHandler.ExportRekapan)
			rekapan.GET("/exports", rekapanHandler.ListExports)
			rekapan.GET("/exports/:documentId", rekapanHandler.GetExportRun)
		}
	}
}

func registerNotificationFeed(group *gin.RouterGroup, h *NotificationHandler, feed service.NotificationFeed) {
	group.GET("", h.View(feed))
	group.POST("/refresh", h.Refresh(feed))
	group.PUT("/page", h.SetPage(feed))
	group.PUT("/size", h.SetSize(feed))
}

// HealthCheck handles GET /api/v1/health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Kas Dashboard Service",
	})
}
