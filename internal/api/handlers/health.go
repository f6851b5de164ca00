package handlers

import (
	"net/http"
	"time"

	"phishguard/internal/config"
	"phishguard/internal/infrastructure/cache"
	"phishguard/pkg/logger"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	cache     *cache.RedisCache
	config    *config.Config
	logger    *logger.Logger
	startTime time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(c *cache.RedisCache, cfg *config.Config, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		cache:     c,
		config:    cfg,
		logger:    log.WithComponent("health"),
		startTime: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status            string            `json:"status"`
	Version           string            `json:"version"`
	Uptime            string            `json:"uptime"`
	Timestamp         string            `json:"timestamp"`
	ExplainConfigured bool              `json:"explain_configured"`
	Checks            map[string]string `json:"checks,omitempty"`
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:            "healthy",
		Version:           h.config.App.Version,
		Uptime:            time.Since(h.startTime).String(),
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
		ExplainConfigured: h.config.Explain.APIKey != "",
	}

	writeJSON(w, http.StatusOK, response)
}

// Ready handles GET /ready - checks dependencies. Redis is an optional
// dependency: when it is disabled the service is ready without it, and a
// failing ping is reported but does not make the service unready because
// analysis itself needs no cache.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string)

	if h.cache != nil {
		if err := h.cache.Ping(r.Context()); err != nil {
			checks["redis"] = "unhealthy: " + err.Error()
		} else {
			checks["redis"] = "healthy"
		}
	} else {
		checks["redis"] = "not configured"
	}

	response := HealthResponse{
		Status:            "ready",
		Version:           h.config.App.Version,
		Uptime:            time.Since(h.startTime).String(),
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
		ExplainConfigured: h.config.Explain.APIKey != "",
		Checks:            checks,
	}

	writeJSON(w, http.StatusOK, response)
}
