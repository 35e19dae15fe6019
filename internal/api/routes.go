package api

import (
	"net/http"

	"alcyxob/workout-log/internal/metrics"
	"alcyxob/workout-log/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Services bundles the service layer the HTTP API is built on.
type Services struct {
	Auth       service.AuthService
	Session    service.SessionService
	InBody     service.InBodyService
	Catalog    service.CatalogService
	Dashboard  service.DashboardService
	Onboarding service.OnboardingService
}

// SetupRoutes installs the middleware chain and every route on router.
func SetupRoutes(
	router *gin.Engine,
	services Services,
	metricsManager *metrics.Manager,
	gatherer prometheus.Gatherer,
	logger *zap.Logger,
) {
	// Recovery is innermost so logging and metrics see the 500 it writes.
	router.Use(
		RequestIDMiddleware(),
		RequestMetricsMiddleware(metricsManager),
		RequestLoggingMiddleware(logger),
		RecoveryMiddleware(logger, metricsManager),
	)

	authHandler := NewAuthHandler(services.Auth, logger)
	sessionHandler := NewSessionHandler(services.Session, logger)
	inBodyHandler := NewInBodyHandler(services.InBody, logger)
	catalogHandler := NewCatalogHandler(services.Catalog, logger)
	dashboardHandler := NewDashboardHandler(services.Dashboard, services.Onboarding, logger)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(AuthMiddleware(services.Auth))
	{
		protected.GET("/me", authHandler.GetProfile)
		protected.PUT("/me", authHandler.UpdateProfile)

		sessionGroup := protected.Group("/sessions")
		{
			sessionGroup.GET("", sessionHandler.ListSessions)
			sessionGroup.POST("", sessionHandler.CreateSession)
			sessionGroup.GET("/:sessionId", sessionHandler.GetSession)
			sessionGroup.PUT("/:sessionId", sessionHandler.ReplaceSession)
			sessionGroup.DELETE("/:sessionId", sessionHandler.DeleteSession)
		}

		inBodyGroup := protected.Group("/inbody")
		{
			inBodyGroup.GET("", inBodyHandler.ListRecords)
			inBodyGroup.POST("", inBodyHandler.CreateRecord)
			inBodyGroup.GET("/:recordId", inBodyHandler.GetRecord)
			inBodyGroup.PUT("/:recordId", inBodyHandler.ReplaceRecord)
			inBodyGroup.DELETE("/:recordId", inBodyHandler.DeleteRecord)
			inBodyGroup.POST("/:recordId/scan", inBodyHandler.CreateScanUpload)
			inBodyGroup.GET("/:recordId/scan", inBodyHandler.GetScan)
		}

		// The catalog is read-only over the API; entries are seeded server-side.
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", catalogHandler.ListExercises)
			exerciseGroup.GET("/:exerciseId", catalogHandler.GetExercise)
		}

		protected.GET("/dashboard", dashboardHandler.GetDashboard)
		protected.POST("/onboarding/sample-data", dashboardHandler.SeedSampleData)
	}
}
