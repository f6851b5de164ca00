package handlers

import (
	"phishguard/internal/config"
	"phishguard/internal/domain/services/engine"
	"phishguard/internal/domain/services/explain"
	"phishguard/internal/infrastructure/cache"
	"phishguard/pkg/logger"
)

// Handlers holds all API handlers
type Handlers struct {
	Health   *HealthHandler
	Analyze  *AnalyzeHandler
	Patterns *PatternsHandler
}

// Dependencies holds dependencies for handlers. Cache may be nil when Redis
// is disabled or unreachable.
type Dependencies struct {
	Config    *config.Config
	Engine    *engine.Engine
	Explainer *explain.Client
	Cache     *cache.RedisCache
	Logger    *logger.Logger
}

// NewHandlers creates all handlers
func NewHandlers(deps Dependencies) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(deps.Cache, deps.Config, deps.Logger),
		Analyze:  NewAnalyzeHandler(deps.Engine, deps.Explainer, deps.Cache, deps.Config, deps.Logger),
		Patterns: NewPatternsHandler(deps.Logger),
	}
}
