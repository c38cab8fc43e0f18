package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/romeoscript/Unboxed/config"
	httpDelivery "github.com/romeoscript/Unboxed/internal/delivery/http"
	"github.com/romeoscript/Unboxed/internal/infrastructure/fetch"
	"github.com/romeoscript/Unboxed/internal/infrastructure/openai"
	"github.com/romeoscript/Unboxed/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger(cfg)

	logger.Info("Starting Unboxed API v1.0.0")
	logger.Infof("Environment: %s", cfg.Server.Environment)
	logger.Infof("Port: %s", cfg.Server.Port)
	logger.Infof("Completion model: %s (temperature=%.1f, max tokens=%d)",
		cfg.OpenAI.Model, cfg.OpenAI.Temperature, cfg.OpenAI.MaxTokens)
	if cfg.Fetch.UseHeadlessBrowser {
		logger.Info("Headless browser fetching enabled")
	}

	// Initialize infrastructure dependencies
	fetcher := fetch.NewClient(cfg.Fetch, logger)
	completer := openai.NewClient(cfg.OpenAI, logger)

	// Initialize usecase layer
	parseService := usecase.NewParseService(fetcher, completer, logger)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(parseService, logger)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Infof("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}

// newLogger builds the service logger from config.
func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if level, err := logrus.ParseLevel(cfg.Server.LogLevel); err == nil {
		logger.SetLevel(level)
	} else if cfg.Server.Environment == "development" {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	return logger
}
