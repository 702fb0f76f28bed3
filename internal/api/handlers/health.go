package handlers

import (
	"context"
	"time"

	"github.com/dhima/calorie-tracker/internal/api/response"
	"github.com/dhima/calorie-tracker/internal/logging"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	serviceName        = "calorie-tracker"
	serviceVersion     = "1.0.0"
	healthCheckTimeout = 2 * time.Second
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	logger   logging.Logger
	database Pinger
}

// NewHealthHandler creates a new health check handler.
func NewHealthHandler(logger logging.Logger, database Pinger) *HealthHandler {
	return &HealthHandler{logger: logger, database: database}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Service  string `json:"service" example:"calorie-tracker"`
	Version  string `json:"version" example:"1.0.0"`
	Database string `json:"database" example:"up"`
} // @name HealthResponse

// Health godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API service and its database
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} response.ErrorResponse "Database unreachable"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.database.Ping(ctx); err != nil {
		h.logger.Error("health check failed",
			zap.Error(err),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.ServiceUnavailable(c, "database unreachable", HealthResponse{
			Status:   "degraded",
			Service:  serviceName,
			Version:  serviceVersion,
			Database: "down",
		})
		return
	}

	response.OK(c, HealthResponse{
		Status:   "ok",
		Service:  serviceName,
		Version:  serviceVersion,
		Database: "up",
	})
}
