package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/liquiditylab/lcrsim/internal/application/report"
	"github.com/liquiditylab/lcrsim/internal/config"
	"github.com/liquiditylab/lcrsim/pkg/adapters/metrics/prometheus"
	"github.com/liquiditylab/lcrsim/pkg/adapters/storage/mongo"
	"github.com/liquiditylab/lcrsim/pkg/api/http"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting LCR sandbox backend",
		zap.String("version", Version),
		zap.String("build_time", BuildTime))

	// Initialize adapters
	probe := mongo.NewProbe(cfg.Database.URL, cfg.Database.Name, cfg.Database.CheckTimeout, logger)
	if cfg.Database.Configured() {
		logger.Info("report store probe configured", zap.String("database", cfg.Database.Name))
	} else {
		logger.Info("report store not configured, diagnostics will say so")
	}

	metricsCollector := prometheus.NewCollector()

	// Initialize application components
	generator := report.NewGenerator()

	// Initialize API server
	httpServer := http.NewServer(&http.Config{
		Port:            cfg.Port,
		ReadTimeout:     cfg.Timeouts.HTTPRead,
		WriteTimeout:    cfg.Timeouts.HTTPWrite,
		DatabaseURLSet:  cfg.Database.URL != "",
		DatabaseNameSet: cfg.Database.Name != "",
		Generator:       generator,
		Probe:           probe,
		Metrics:         metricsCollector,
		Logger:          logger,
	})

	// Start server
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	logger.Info("LCR sandbox backend started", zap.Int("port", cfg.Port))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("LCR sandbox backend shut down complete")
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
