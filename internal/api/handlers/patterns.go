package handlers

import (
	"net/http"

	"phishguard/internal/domain/services/engine"
	"phishguard/pkg/logger"
)

// PatternsHandler serves the rule catalog
type PatternsHandler struct {
	logger *logger.Logger
}

// NewPatternsHandler creates a new patterns handler
func NewPatternsHandler(log *logger.Logger) *PatternsHandler {
	return &PatternsHandler{
		logger: log.WithComponent("patterns-handler"),
	}
}

// Get handles GET /api/v1/patterns. The catalog is static per build, so
// clients may cache it for local pre-filtering.
func (h *PatternsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, engine.Patterns())
}
