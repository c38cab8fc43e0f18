package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/romeoscript/Unboxed/internal/domain"
	"github.com/romeoscript/Unboxed/internal/usecase"
)

const missingParamsMessage = "Missing required parameters: url and openaiApiKey are required"

// Handler holds dependencies for HTTP handlers
type Handler struct {
	parseService *usecase.ParseService
	log          *logrus.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(parseService *usecase.ParseService, log *logrus.Logger) *Handler {
	return &Handler{
		parseService: parseService,
		log:          log,
	}
}

// Root is the health probe at GET /.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "API is running",
	})
}

// HealthCheck returns a richer health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "unboxed-api",
		"version": "1.0.0",
	})
}

// ParseProduct handles POST /parse-product. Validation failures are 400,
// fetch failures are 500, and anything past the fetch resolves to a 200 with
// a best-effort record.
func (h *Handler) ParseProduct(c *gin.Context) {
	var req domain.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": missingParamsMessage})
		return
	}

	if req.URL == "" || req.OpenAIAPIKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": missingParamsMessage})
		return
	}

	record, err := h.parseService.ParseProduct(c.Request.Context(), &req)
	if err != nil {
		h.log.Errorf("Failed to process %s: %v", req.URL, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process product URL",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, record)
}
