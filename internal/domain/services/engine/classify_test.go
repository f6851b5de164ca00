package engine

import (
	"testing"

	"phishguard/internal/domain/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		score int
		want  models.RiskLevel
	}{
		{0, models.RiskLevelSafe},
		{15, models.RiskLevelSafe},
		{30, models.RiskLevelSafe},
		{31, models.RiskLevelSuspicious},
		{45, models.RiskLevelSuspicious},
		{60, models.RiskLevelSuspicious},
		{61, models.RiskLevelHighRisk},
		{100, models.RiskLevelHighRisk},
	}

	for _, tt := range tests {
		if got := Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
