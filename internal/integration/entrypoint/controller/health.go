// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker probes one dependency.
type HealthChecker func(ctx context.Context) error

// HealthController handles health check endpoints.
type HealthController struct {
	database        HealthChecker
	cache           HealthChecker
	templateVersion string
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status          string `json:"status"`
	Database        string `json:"database"`
	Cache           string `json:"cache"`
	TemplateVersion string `json:"templateVersion"`
	Timestamp       string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// A nil cache checker reports the cache as disabled.
func NewHealthController(database, cache HealthChecker, templateVersion string) *HealthController {
	return &HealthController{
		database:        database,
		cache:           cache,
		templateVersion: templateVersion,
	}
}

// Check handles GET /health requests.
// The cache is optional, so only the database decides the status code.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	response := HealthResponse{
		Status:          "ok",
		Database:        probe(ctx, h.database, "connected", "disconnected"),
		Cache:           "disabled",
		TemplateVersion: h.templateVersion,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}
	if h.cache != nil {
		response.Cache = probe(ctx, h.cache, "connected", "unavailable")
	}

	status := http.StatusOK
	if response.Database != "connected" {
		response.Status = "degraded"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, response)
}

func probe(ctx context.Context, check HealthChecker, up, down string) string {
	if check == nil || check(ctx) != nil {
		return down
	}
	return up
}
