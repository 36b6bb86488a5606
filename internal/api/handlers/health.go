package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const pingTimeout = 2 * time.Second

// HealthCheck is a dependency probed by the health and readiness endpoints
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	checks       []HealthCheck
	integrations map[string]bool
	version      string
	now          func() time.Time
}

// NewHealthHandler creates a new health handler. Integrations are optional
// upstreams; a disabled one is reported but never fails the check.
func NewHealthHandler(version string, integrations map[string]bool, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{
		checks:       checks,
		integrations: integrations,
		version:      version,
		now:          time.Now,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status       string            `json:"status"`
	Timestamp    time.Time         `json:"timestamp"`
	Version      string            `json:"version"`
	Services     map[string]string `json:"services"`
	Integrations map[string]string `json:"integrations,omitempty"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Database connectivity and which optional integrations are configured
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	services, ok := h.probe(c.Request.Context(), "healthy", "error: ")

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: h.now(),
		Version:   h.version,
		Services:  services,
	}
	if len(h.integrations) > 0 {
		response.Integrations = make(map[string]string, len(h.integrations))
		for name, configured := range h.integrations {
			response.Integrations[name] = "disabled"
			if configured {
				response.Integrations[name] = "configured"
			}
		}
	}

	statusCode := http.StatusOK
	if !ok {
		response.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	services, ready := h.probe(c.Request.Context(), "ready", "not ready: ")

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, gin.H{
		"ready":     ready,
		"timestamp": h.now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": h.now(),
	})
}

// probe runs every check under a shared timeout
func (h *HealthHandler) probe(ctx context.Context, okText, failPrefix string) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	services := make(map[string]string, len(h.checks))
	ok := true
	for _, check := range h.checks {
		if err := check.Check(ctx); err != nil {
			services[check.Name] = failPrefix + err.Error()
			ok = false
			continue
		}
		services[check.Name] = okText
	}
	return services, ok
}
