package engine

import "phishguard/internal/domain/models"

// Classify maps a risk score onto the three-tier risk scale.
// 0-30 safe, 31-60 suspicious, 61-100 high risk.
func Classify(score int) models.RiskLevel {
	switch {
	case score <= 30:
		return models.RiskLevelSafe
	case score <= 60:
		return models.RiskLevelSuspicious
	default:
		return models.RiskLevelHighRisk
	}
}
