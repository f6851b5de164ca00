package engine

import (
	"reflect"
	"testing"

	"phishguard/pkg/logger"
)

func newTestEngine() *Engine {
	return New(logger.NewDefault())
}

func TestAnalysisDeterminism(t *testing.T) {
	e := newTestEngine()

	message := "URGENT! Verify your account at http://bit.ly/x or call 9999999999"
	first := e.AnalyzeMessage(message)
	for i := 0; i < 5; i++ {
		again := e.AnalyzeMessage(message)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d diverged: first=%+v again=%+v", i, first, again)
		}
	}
}

func TestScoreClampedAt100(t *testing.T) {
	e := newTestEngine()

	// Trips every message rule plus two embedded URL analyses
	saturated := "urgent otp account blocked congratulations winner earn lakhs daily " +
		"rbi transfer money rs plz!!! http://bit.ly/abc http://192.168.1.1/verify"

	result := e.AnalyzeMessage(saturated)
	if result.RiskScore != 100 {
		t.Errorf("risk_score = %d, want clamp at 100", result.RiskScore)
	}
}

func TestFlagsNeverRepeat(t *testing.T) {
	e := newTestEngine()

	inputs := []struct {
		name  string
		flags []string
	}{
		{"message", e.AnalyzeMessage("urgent urgent verify otp pin password account blocked").Flags},
		{"url", e.AnalyzeURL("http://evil.xyz/verify/confirm/login/secure").Flags},
		{"phone", e.AnalyzePhone("9999999999").Flags},
	}

	for _, in := range inputs {
		t.Run(in.name, func(t *testing.T) {
			seen := make(map[string]bool)
			for _, f := range in.flags {
				if seen[f] {
					t.Errorf("flag %q appears more than once in %v", f, in.flags)
				}
				seen[f] = true
			}
		})
	}
}
