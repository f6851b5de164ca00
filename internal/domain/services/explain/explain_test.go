package explain

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"phishguard/internal/domain/models"
	"phishguard/internal/domain/services/detect"
	"phishguard/pkg/logger"
)

func highRiskRequest() Request {
	return Request{
		InputType: models.InputTypeMessage,
		RiskScore: 85,
		RiskLevel: models.RiskLevelHighRisk,
		Flags:     []string{"urgency_pressure", "otp_kyc_request", "account_threat", "contains_link"},
		Language:  detect.LanguageEnglish,
	}
}

func TestFallback(t *testing.T) {
	tests := []struct {
		name         string
		req          Request
		wantContains []string
		wantAbsent   []string
	}{
		{
			name:         "high risk lists top three flags and warning",
			req:          highRiskRequest(),
			wantContains: []string{"HIGH RISK", "urgent language", "OTP or KYC", "account suspension", "Do NOT click"},
			// the fourth flag is beyond the cap
			wantAbsent: []string{"links that need verification"},
		},
		{
			name: "suspicious keeps the warning line",
			req: Request{
				RiskLevel: models.RiskLevelSuspicious,
				RiskScore: 45,
				Flags:     []string{"suspicious_tld"},
			},
			wantContains: []string{"SUSPICIOUS", "domain extension", "Do NOT click"},
		},
		{
			name: "safe has no warning line",
			req: Request{
				RiskLevel: models.RiskLevelSafe,
				RiskScore: 0,
				Flags:     []string{},
			},
			wantContains: []string{"LOW RISK"},
			wantAbsent:   []string{"Do NOT click", "Detected issues"},
		},
		{
			name: "unknown flag renders as words",
			req: Request{
				RiskLevel: models.RiskLevelSuspicious,
				RiskScore: 40,
				Flags:     []string{"some_new_flag"},
			},
			wantContains: []string{"some new flag"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fallback(tt.req)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("explanation missing %q:\n%s", want, got)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("explanation should not contain %q:\n%s", absent, got)
				}
			}
		})
	}
}

func TestFallbackIsDeterministic(t *testing.T) {
	req := highRiskRequest()
	first := Fallback(req)
	for i := 0; i < 3; i++ {
		if got := Fallback(req); got != first {
			t.Fatalf("fallback diverged: %q vs %q", got, first)
		}
	}
}

func TestExplainWithoutAPIKeyUsesFallback(t *testing.T) {
	c := NewClient(Config{}, logger.NewDefault())

	got := c.Explain(context.Background(), highRiskRequest())
	if got != Fallback(highRiskRequest()) {
		t.Errorf("expected fallback explanation, got %q", got)
	}
}

func TestExplainUsesAPIResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key in query: %s", r.URL.String())
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"model explanation"}]}}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", APIURL: srv.URL}, logger.NewDefault())

	got := c.Explain(context.Background(), highRiskRequest())
	if got != "model explanation" {
		t.Errorf("explanation = %q, want %q", got, "model explanation")
	}
}

func TestExplainFallsBackOnAPIFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
		{
			name: "empty candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"candidates":[]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewClient(Config{APIKey: "test-key", APIURL: srv.URL}, logger.NewDefault())

			got := c.Explain(context.Background(), highRiskRequest())
			if got != Fallback(highRiskRequest()) {
				t.Errorf("expected fallback on %s, got %q", tt.name, got)
			}
		})
	}
}
