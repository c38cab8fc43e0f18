package http

import (
	"github.com/gin-gonic/gin"

	"github.com/romeoscript/Unboxed/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health probes
	router.GET("/", handler.Root)
	router.GET("/health", handler.HealthCheck)

	// Product parsing
	router.POST("/parse-product", handler.ParseProduct)

	return router
}
