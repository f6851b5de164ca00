package engine

import (
	"strings"

	"phishguard/internal/domain/models"
)

// Per-entity contribution limits for embedded URLs and phone numbers. An
// embedded link or number is corroborating evidence, not the primary
// signal: its score is folded in at a reduced fraction and capped so a
// single short link cannot dominate an otherwise innocuous message.
const (
	embeddedURLDivisor   = 2
	embeddedURLCap       = 30
	embeddedPhoneDivisor = 3
	embeddedPhoneCap     = 15
)

// AnalyzeMessage runs the message rule table over normalized free text and
// recursively scores up to two embedded URLs and two embedded phone numbers.
func (e *Engine) AnalyzeMessage(text string) *models.MessageAnalysis {
	var card scorecard

	lower := strings.ToLower(text)

	// Each rule contributes at most once: first matching pattern wins
	for _, rule := range messageRules {
		for _, pattern := range rule.Patterns {
			if pattern.MatchString(lower) {
				card.add(rule.Weight, models.Detail{
					Rule:   rule.Name,
					Flag:   rule.Flag,
					Points: rule.Weight,
				})
				break
			}
		}
	}

	urls := ExtractURLs(text)
	for i, raw := range urls {
		if i >= maxEmbeddedPerKind {
			break
		}
		sub := e.AnalyzeURL(raw)
		contribution := sub.RiskScore / embeddedURLDivisor
		if contribution > embeddedURLCap {
			contribution = embeddedURLCap
		}
		card.score += contribution
		card.mergeFlags(sub.Flags)
	}

	phones := ExtractPhones(text)
	for i, raw := range phones {
		if i >= maxEmbeddedPerKind {
			break
		}
		sub := e.AnalyzePhone(raw)
		contribution := sub.RiskScore / embeddedPhoneDivisor
		if contribution > embeddedPhoneCap {
			contribution = embeddedPhoneCap
		}
		card.score += contribution
		card.mergeFlags(sub.Flags)
	}

	if urls == nil {
		urls = []string{}
	}
	if phones == nil {
		phones = []string{}
	}

	result := &models.MessageAnalysis{
		Analysis:       card.result(),
		EmbeddedURLs:   urls,
		EmbeddedPhones: phones,
	}

	e.logger.Debug().
		Int("risk_score", result.RiskScore).
		Strs("flags", result.Flags).
		Int("embedded_urls", len(urls)).
		Int("embedded_phones", len(phones)).
		Msg("message analyzed")

	return result
}
