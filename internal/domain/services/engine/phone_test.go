package engine

import "testing"

func TestAnalyzePhone(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name        string
		phone       string
		wantScore   int
		wantFlags   []string
		wantCleaned string
	}{
		{
			name:        "valid domestic mobile",
			phone:       "+91 98765 43210",
			wantScore:   0,
			wantFlags:   []string{},
			wantCleaned: "+919876543210",
		},
		{
			name:        "all nines",
			phone:       "9999999999",
			wantScore:   15,
			wantFlags:   []string{"suspicious_repeated_digits"},
			wantCleaned: "9999999999",
		},
		{
			name:      "foreign calling code",
			phone:     "+1 (202) 555-0123",
			wantScore: 15,
			wantFlags: []string{"foreign_country_code"},
		},
		{
			name:      "too short",
			phone:     "12345",
			wantScore: 12,
			wantFlags: []string{"suspicious_number_length"},
		},
		{
			name:      "invalid domestic leading digit",
			phone:     "5551234567",
			wantScore: 20,
			wantFlags: []string{"invalid_number_pattern"},
		},
		{
			name:      "long run without low distinct count",
			phone:     "9876599999",
			wantScore: 12,
			wantFlags: []string{"suspicious_repeated_digits"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.AnalyzePhone(tt.phone)
			if got.RiskScore != tt.wantScore {
				t.Errorf("risk_score = %d, want %d (flags=%v)", got.RiskScore, tt.wantScore, got.Flags)
			}
			assertFlagSet(t, got.Flags, tt.wantFlags)
			if tt.wantCleaned != "" && got.CleanedNumber != tt.wantCleaned {
				t.Errorf("cleaned_number = %q, want %q", got.CleanedNumber, tt.wantCleaned)
			}
		})
	}
}

// A number that satisfies both repeated-digit conditions gets the flag once
// and only the stronger check's weight. Known quirk carried over on purpose:
// the weaker run check is skipped entirely once the distinct-digit check
// has flagged the number, so the two weights never stack.
func TestAnalyzePhoneRepeatedDigitChecksDoNotStack(t *testing.T) {
	e := newTestEngine()

	got := e.AnalyzePhone("9999999999")

	count := 0
	for _, f := range got.Flags {
		if f == "suspicious_repeated_digits" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("suspicious_repeated_digits recorded %d times, want once", count)
	}
	if got.RiskScore != weightRepeatedDigits {
		t.Errorf("risk_score = %d, want %d (weaker check must not add)", got.RiskScore, weightRepeatedDigits)
	}
}
