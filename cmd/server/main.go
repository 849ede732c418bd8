package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"kas-dashboard-svc/docs"
	"kas-dashboard-svc/internal/config"
	"kas-dashboard-svc/internal/database"
	"kas-dashboard-svc/internal/handler"
	"kas-dashboard-svc/internal/kasapi"
	"kas-dashboard-svc/internal/middleware"
	"kas-dashboard-svc/internal/repository"
	"kas-dashboard-svc/internal/scheduler"
	"kas-dashboard-svc/internal/service"
	"kas-dashboard-svc/internal/session"
	"kas-dashboard-svc/pkg/logger"
)

// @title Kas Dashboard Service API
// @version 1.0
// @description Admin dashboard backend for the uang kas API: members, invoices, notifications and rekapan exports

// @contact.name API Support

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "Kas Dashboard Service API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = ""
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Kas Dashboard Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	location, err := time.LoadLocation(cfg.Locale.TimeZone)
	if err != nil {
		appLogger.WithFields(map[string]interface{}{
			"time_zone": cfg.Locale.TimeZone,
			"error":     err,
		}).Warn("Unknown time zone, falling back to local time")
		location = time.Local
	}

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize repositories
	exportLogRepo := repository.NewExportLogRepository(db.DB)

	// Initialize the kas API client; every authenticated call reads the token from the session store
	sessions := session.NewStore()
	kasClient := kasapi.NewClient(cfg.KasAPI.BaseURL, nil, sessions, appLogger)

	// Initialize services
	authService := service.NewAuthService(kasClient, sessions, appLogger)
	memberService := service.NewMemberService(kasClient, appLogger)
	invoiceService := service.NewInvoiceService(kasClient, kasClient, appLogger)
	notificationService := service.NewNotificationService(kasClient, location, appLogger)
	dashboardService := service.NewDashboardService(kasClient, kasClient, kasClient, appLogger)
	rekapanService := service.NewRekapanService(kasClient, kasClient, exportLogRepo, location, appLogger)

	// Log in at startup when credentials are configured, so the scheduler has a session
	if cfg.KasAPI.HasCredentials() {
		loginCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := authService.Login(loginCtx, cfg.KasAPI.Username, cfg.KasAPI.Password); err != nil {
			appLogger.WithField("error", err).Warn("Startup login failed, waiting for an admin to log in")
		}
		cancel()
	}

	// Initialize and start rekapan scheduler
	var rekapanScheduler *scheduler.RekapanScheduler
	if cfg.Scheduler.RekapanCronExpression != "" {
		rekapanScheduler = scheduler.NewRekapanScheduler(rekapanService, appLogger, cfg.Scheduler.RekapanCronExpression, cfg.Export.Dir)
		if err := rekapanScheduler.Start(); err != nil {
			appLogger.WithField("error", err).Fatal("Failed to start rekapan scheduler")
		}
	} else {
		appLogger.Info("Rekapan scheduler disabled")
	}

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS.AllowedOriginList()))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())
	router.HandleMethodNotAllowed = true

	// Setup routes
	handler.SetupRoutes(router, handler.Services{
		Auth:         authService,
		Dashboard:    dashboardService,
		Notification: notificationService,
		Member:       memberService,
		Invoice:      invoiceService,
		Rekapan:      rekapanService,
	}, sessions, appLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	if rekapanScheduler != nil {
		rekapanScheduler.Stop()
	}

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Fatal("Server forced to shutdown")
	}

	// Best-effort logout so the kas API token does not outlive the process
	if sessions.Authenticated() {
		if _, err := authService.Logout(ctx); err != nil {
			appLogger.WithField("error", err).Warn("Logout on shutdown failed")
		}
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
