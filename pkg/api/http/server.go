package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/liquiditylab/lcrsim/internal/application/report"
	"github.com/liquiditylab/lcrsim/pkg/ports"
)

// Server represents the HTTP API server
type Server struct {
	router    *gin.Engine
	server    *http.Server
	generator *report.Generator
	probe     ports.DatabaseProbe
	metrics   ports.MetricsCollector
	logger    *zap.Logger
	dbURLSet  bool
	dbNameSet bool
}

// Config holds HTTP server configuration
type Config struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	DatabaseURLSet  bool
	DatabaseNameSet bool
	Generator       *report.Generator
	Probe           ports.DatabaseProbe
	Metrics         ports.MetricsCollector
	Logger          *zap.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(ginzap.Ginzap(cfg.Logger, "2006-01-02T15:04:05Z07:00", true))
	router.Use(ginzap.RecoveryWithZap(cfg.Logger, true))
	router.Use(cors.Default())
	router.Use(requestID())
	router.Use(observeRequests(cfg.Metrics))

	s := &Server{
		router:    router,
		generator: cfg.Generator,
		probe:     cfg.Probe,
		metrics:   cfg.Metrics,
		logger:    cfg.Logger,
		dbURLSet:  cfg.DatabaseURLSet,
		dbNameSet: cfg.DatabaseNameSet,
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

// setupRoutes configures API routes
func (s *Server) setupRoutes() {
	// Greetings the dashboard pings on load
	s.router.GET("/", s.handleRoot)
	s.router.GET("/api/hello", s.handleHello)

	// Diagnostics and report runs
	s.router.GET("/test", s.handleDiagnostics)
	s.router.POST("/run", s.handleRun)

	// Operational
	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Router returns the underlying gin engine
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server shut down complete")
	return nil
}
