// Package http provides the API server wiring: routes, middleware, and
// lifecycle management.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/pcoetsee/settings-service/internal/config"
	"github.com/pcoetsee/settings-service/internal/metrics"
	servicesHTTP "github.com/pcoetsee/settings-service/internal/services/http"
	servicesUseCase "github.com/pcoetsee/settings-service/internal/services/usecase"
	settingsHTTP "github.com/pcoetsee/settings-service/internal/settings/http"
)

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates the API server with all routes and middleware wired.
// metricsProvider may be nil when metrics are disabled.
func NewServer(
	cfg *config.Config,
	logger *slog.Logger,
	serviceHandler *servicesHTTP.ServiceHandler,
	settingHandler *settingsHTTP.SettingHandler,
	authUseCase servicesUseCase.AuthUseCase,
	metricsProvider *metrics.Provider,
) *Server {
	gin.SetMode(cfg.GetGinMode())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := router.Group("/v1")

	// Registration is open; setting reads carry their own credentials and
	// authenticate inside the use case transaction.
	v1.POST("/services", serviceHandler.RegisterHandler)
	v1.GET("/settings", settingHandler.ListHandler)
	v1.GET("/settings/:name", settingHandler.GetHandler)

	authenticated := v1.Group("")
	authenticated.Use(servicesHTTP.BasicAuthMiddleware(authUseCase, logger))
	if cfg.RateLimitEnabled {
		authenticated.Use(servicesHTTP.RateLimitMiddleware(
			cfg.RateLimitRequestsPerSec,
			cfg.RateLimitBurst,
			logger,
		))
	}

	authenticated.GET("/services", serviceHandler.ListHandler)
	authenticated.GET("/services/:name", serviceHandler.GetHandler)
	authenticated.PUT("/services/:name", serviceHandler.UpdateHandler)
	authenticated.PUT("/settings/:name", settingHandler.UpsertHandler)
	authenticated.DELETE("/settings/:name", settingHandler.DeleteHandler)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": "The requested resource was not found"})
	})

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the API HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
