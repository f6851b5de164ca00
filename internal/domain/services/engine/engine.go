// Package engine implements the rule-based risk analysis core: three typed
// analyzers (message, URL, phone) over immutable pattern tables, weighted
// additive scoring with per-analysis flag deduplication, and the
// score-to-level classifier. Analyzers are stateless and safe for
// concurrent use; identical input always yields an identical result.
package engine

import (
	"phishguard/internal/domain/models"
	"phishguard/pkg/logger"
)

// Engine runs the rule-based analyzers
type Engine struct {
	logger *logger.Logger
}

// New creates an analysis engine
func New(log *logger.Logger) *Engine {
	return &Engine{
		logger: log.WithComponent("engine"),
	}
}

// scorecard accumulates one analysis. Weight and flag presence are tracked
// independently: adding points for a flag that is already recorded raises
// the score but does not repeat the flag or its detail entry.
type scorecard struct {
	score   int
	flags   []string
	details []models.Detail
}

func (s *scorecard) has(flag string) bool {
	for _, f := range s.flags {
		if f == flag {
			return true
		}
	}
	return false
}

// add adds points and records the flag and detail on first occurrence
func (s *scorecard) add(points int, d models.Detail) {
	s.score += points
	if d.Flag != "" && s.has(d.Flag) {
		return
	}
	if d.Flag != "" {
		s.flags = append(s.flags, d.Flag)
	}
	s.details = append(s.details, d)
}

// mergeFlags appends flags from a sub-analysis that are not yet present
func (s *scorecard) mergeFlags(flags []string) {
	for _, f := range flags {
		if !s.has(f) {
			s.flags = append(s.flags, f)
		}
	}
}

// result clamps the score to [0,100] and materializes the Analysis
func (s *scorecard) result() models.Analysis {
	score := s.score
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	flags := s.flags
	if flags == nil {
		flags = []string{}
	}
	details := s.details
	if details == nil {
		details = []models.Detail{}
	}
	return models.Analysis{
		RiskScore: score,
		Flags:     flags,
		Details:   details,
	}
}
