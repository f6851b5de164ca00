package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"phishguard/internal/config"
	"phishguard/internal/domain/models"
	"phishguard/internal/domain/services/detect"
	"phishguard/internal/domain/services/engine"
	"phishguard/internal/domain/services/explain"
	"phishguard/internal/infrastructure/cache"
	"phishguard/pkg/logger"
)

// maxBatchSize bounds batch analysis requests
const maxBatchSize = 25

// AnalyzeHandler handles analysis endpoints
type AnalyzeHandler struct {
	engine    *engine.Engine
	explainer *explain.Client
	langs     *detect.LanguageDetector
	cache     *cache.RedisCache
	config    *config.Config
	logger    *logger.Logger
}

// NewAnalyzeHandler creates a new analysis handler
func NewAnalyzeHandler(eng *engine.Engine, exp *explain.Client, c *cache.RedisCache, cfg *config.Config, log *logger.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		engine:    eng,
		explainer: exp,
		langs:     detect.NewLanguageDetector(),
		cache:     c,
		config:    cfg,
		logger:    log.WithComponent("analyze-handler"),
	}
}

// AnalyzeRequest is the request body for analysis
type AnalyzeRequest struct {
	Input string `json:"input"`
	Type  string `json:"type,omitempty"`
}

// AnalyzeBatchRequest is the request body for batch analysis
type AnalyzeBatchRequest struct {
	Inputs []AnalyzeRequest `json:"inputs"`
}

// AnalyzeBatchResponse wraps batch results, in request order
type AnalyzeBatchResponse struct {
	Results []*models.AnalysisResult `json:"results"`
}

// Analyze handles POST /api/v1/analyze
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, ok := h.analyzeOne(r.Context(), req)
	if !ok {
		writeError(w, http.StatusBadRequest, "Input is required")
		return
	}

	h.logger.Info().
		Str("request_id", result.RequestID).
		Str("input_type", string(result.InputType)).
		Int("risk_score", result.RiskScore).
		Str("risk_level", string(result.RiskLevel)).
		Bool("cached", result.Cached).
		Msg("input analyzed")

	writeJSON(w, http.StatusOK, result)
}

// AnalyzeBatch handles POST /api/v1/analyze/batch
func (h *AnalyzeHandler) AnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.Inputs) == 0 {
		writeError(w, http.StatusBadRequest, "At least one input is required")
		return
	}
	if len(req.Inputs) > maxBatchSize {
		writeError(w, http.StatusBadRequest, "Maximum 25 inputs per batch")
		return
	}

	results := make([]*models.AnalysisResult, len(req.Inputs))
	for i, in := range req.Inputs {
		result, ok := h.analyzeOne(r.Context(), in)
		if !ok {
			writeError(w, http.StatusBadRequest, "Input is required")
			return
		}
		results[i] = result
	}

	h.logger.Info().Int("count", len(results)).Msg("batch analyzed")

	writeJSON(w, http.StatusOK, AnalyzeBatchResponse{Results: results})
}

// analyzeOne runs the full pipeline for a single input: normalize, detect
// type and language, consult the response cache, run the rule engine,
// attach the explanation and cache the outcome. Returns ok=false for
// empty input.
func (h *AnalyzeHandler) analyzeOne(ctx context.Context, req AnalyzeRequest) (*models.AnalysisResult, bool) {
	input := detect.Normalize(req.Input)
	if input == "" {
		return nil, false
	}

	inputType := detect.Resolve(models.InputType(req.Type), input)
	language := h.langs.Detect(input)
	requestID := uuid.New().String()

	cacheKey := cache.AnalysisKey(string(inputType), input)
	if h.cache != nil {
		var cached models.AnalysisResult
		if err := h.cache.GetCachedAnalysis(ctx, cacheKey, &cached); err == nil {
			cached.RequestID = requestID
			cached.Cached = true
			return &cached, true
		} else if !cache.IsMiss(err) {
			h.logger.Warn().Err(err).Msg("cache lookup failed")
		}
	}

	result := &models.AnalysisResult{
		RequestID:  requestID,
		InputType:  inputType,
		Language:   string(language),
		Disclaimer: models.Disclaimer,
	}

	var analysis models.Analysis
	switch inputType {
	case models.InputTypeURL:
		urlAnalysis := h.engine.AnalyzeURL(input)
		analysis = urlAnalysis.Analysis
		result.Domain = urlAnalysis.Domain
	case models.InputTypePhone:
		phoneAnalysis := h.engine.AnalyzePhone(input)
		analysis = phoneAnalysis.Analysis
		result.CleanedNumber = phoneAnalysis.CleanedNumber
	default:
		msgAnalysis := h.engine.AnalyzeMessage(input)
		analysis = msgAnalysis.Analysis
		result.EmbeddedURLs = msgAnalysis.EmbeddedURLs
		result.EmbeddedPhones = msgAnalysis.EmbeddedPhones
	}

	result.RiskScore = analysis.RiskScore
	result.RiskLevel = engine.Classify(analysis.RiskScore)
	result.Flags = analysis.Flags
	result.Details = analysis.Details

	result.Explanation = h.explainer.Explain(ctx, explain.Request{
		InputType: inputType,
		RiskScore: result.RiskScore,
		RiskLevel: result.RiskLevel,
		Flags:     result.Flags,
		Language:  language,
	})

	if h.cache != nil {
		if err := h.cache.CacheAnalysis(ctx, cacheKey, result, h.config.Redis.CacheTTL); err != nil {
			h.logger.Warn().Err(err).Msg("failed to cache analysis")
		}
	}

	return result, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
