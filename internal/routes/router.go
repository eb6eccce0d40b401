package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetops/internal/config"
	"fleetops/internal/delivery/http/handler"
	"fleetops/internal/infrastructure/database/postgres"
	"fleetops/internal/logger"
	"fleetops/internal/middleware"
	"fleetops/internal/tracking"
	"fleetops/internal/usecase/analytics"
	"fleetops/internal/usecase/auth"
	"fleetops/internal/usecase/dispatch"
	"fleetops/internal/usecase/fleet"
	"fleetops/internal/usecase/leave"
	"fleetops/internal/usecase/maintenance"
	"fleetops/internal/usecase/payment"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB, hub *tracking.Hub) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security headers,
	// CORS, request size limit, general rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(10 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userRepository := postgres.NewUserRepository(db)
	truckRepository := postgres.NewTruckRepository(db)
	driverRepository := postgres.NewDriverRepository(db)
	tripRepository := postgres.NewTripRepository(db)
	maintenanceRepository := postgres.NewMaintenanceRepository(db)
	paymentRepository := postgres.NewPaymentRepository(db)
	leaveRepository := postgres.NewLeaveRepository(db)
	reportRepository := postgres.NewReportRepository(db)

	authService := auth.NewService(userRepository, driverRepository, cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	fleetService := fleet.NewService(truckRepository, driverRepository)
	dispatchService := dispatch.NewService(tripRepository, truckRepository, driverRepository)
	maintenanceService := maintenance.NewService(maintenanceRepository)
	paymentService := payment.NewService(paymentRepository, driverRepository)
	leaveService := leave.NewService(leaveRepository, driverRepository)
	analyticsService := analytics.NewService(reportRepository)

	authHandler := handler.NewAuthHandler(authService)
	truckHandler := handler.NewTruckHandler(fleetService)
	driverHandler := handler.NewDriverHandler(fleetService)
	tripHandler := handler.NewTripHandler(dispatchService)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	leaveHandler := handler.NewLeaveHandler(leaveService)
	reportHandler := handler.NewReportHandler(analyticsService)

	trackingHandler := tracking.NewHandler(hub, cfg)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", authHandler.Login)
		v1.GET("/tracking/live", trackingHandler.HandleTracking)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))

		table := policyTable(
			authHandler,
			truckHandler,
			driverHandler,
			tripHandler,
			maintenanceHandler,
			paymentHandler,
			leaveHandler,
			reportHandler,
		)
		for _, r := range table {
			handlers := []gin.HandlerFunc{}
			if r.Roles != nil {
				handlers = append(handlers, middleware.RoleMiddleware(r.Roles...))
			}
			handlers = append(handlers, r.Handler)
			protected.Handle(r.Method, r.Path, handlers...)
		}
	}

	logger.Info("All routes initialized")
	return router
}
