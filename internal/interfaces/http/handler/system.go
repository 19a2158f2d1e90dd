package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// WelcomeMessage is served at the API root
const WelcomeMessage = "Welcome to you in E-Commerce Website API"

// healthCheckTimeout bounds the database ping of /health
const healthCheckTimeout = 2 * time.Second

// Pinger checks connectivity of a backing store
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler serves the root and health endpoints
type SystemHandler struct {
	BaseHandler
	db        Pinger
	driver    string
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler. db may be nil for the
// in-memory driver.
func NewSystemHandler(db Pinger, driver string) *SystemHandler {
	return &SystemHandler{db: db, driver: driver, startTime: time.Now()}
}

// HealthResponse reports liveness and database reachability
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Driver    string `json:"driver"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// Welcome handles GET /
func (h *SystemHandler) Welcome(c *gin.Context) {
	c.String(http.StatusOK, WelcomeMessage)
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:    "healthy",
		Database:  "up",
		Driver:    h.driver,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			logger.L(c.Request.Context()).Warn("Health check ping failed", zap.Error(err))
			resp.Status = "unhealthy"
			resp.Database = "down"
			c.JSON(http.StatusServiceUnavailable, dto.Response{
				Success: false,
				Data:    resp,
				Error: &dto.ErrorInfo{
					Code:      dto.ErrCodeServiceUnavailable,
					Message:   "Database is unreachable",
					RequestID: getRequestID(c),
				},
			})
			return
		}
	}
	h.Success(c, resp)
}
