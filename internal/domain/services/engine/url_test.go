package engine

import (
	"strings"
	"testing"
)

func TestAnalyzeURL(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name       string
		url        string
		wantScore  int
		wantFlags  []string
		wantDomain string
	}{
		{
			name:      "lookalike brand on cheap tld",
			url:       "http://paypa1-secure.xyz/login",
			wantScore: 72,
			wantFlags: []string{
				"no_https", "suspicious_tld", "brand_spoofing", "suspicious_path_token",
			},
			wantDomain: "paypa1-secure.xyz",
		},
		{
			name:       "official brand domain is not spoofing",
			url:        "https://www.paypal.com/signin",
			wantScore:  12,
			wantFlags:  []string{"suspicious_path_token"},
			wantDomain: "www.paypal.com",
		},
		{
			name:       "raw ip host over plain http",
			url:        "http://192.168.1.5/login",
			wantScore:  45,
			wantFlags:  []string{"ip_based_url", "no_https", "suspicious_path_token"},
			wantDomain: "192.168.1.5",
		},
		{
			name:       "punycode host",
			url:        "http://xn--pypal-4ve.com/",
			wantScore:  28,
			wantFlags:  []string{"punycode_domain", "no_https"},
			wantDomain: "xn--pypal-4ve.com",
		},
		{
			name:      "credentials in authority section",
			url:       "https://evil@example.com/",
			wantScore: 18,
			wantFlags: []string{"userinfo_in_url"},
		},
		{
			name:       "schemeless shortener gets no transport penalty",
			url:        "bit.ly/abc",
			wantScore:  15,
			wantFlags:  []string{"url_shortener"},
			wantDomain: "bit.ly",
		},
		{
			name:       "deeply nested subdomains",
			url:        "http://a.b.c.d.example.com",
			wantScore:  20,
			wantFlags:  []string{"no_https", "excessive_subdomains"},
			wantDomain: "a.b.c.d.example.com",
		},
		{
			name:      "long random path",
			url:       "https://example.com/" + strings.Repeat("a", 90),
			wantScore: 22,
			wantFlags: []string{"suspicious_long_url", "random_string_url"},
		},
		{
			name:       "odd character fallback when nothing else fires",
			url:        "https://ex_ample.com",
			wantScore:  6,
			wantFlags:  []string{"weird_domain_chars"},
			wantDomain: "ex_ample.com",
		},
		{
			name:      "clean https url",
			url:       "https://example.com/about",
			wantScore: 0,
			wantFlags: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.AnalyzeURL(tt.url)
			if got.RiskScore != tt.wantScore {
				t.Errorf("risk_score = %d, want %d (flags=%v details=%+v)",
					got.RiskScore, tt.wantScore, got.Flags, got.Details)
			}
			assertFlagSet(t, got.Flags, tt.wantFlags)
			if tt.wantDomain != "" && got.Domain != tt.wantDomain {
				t.Errorf("domain = %q, want %q", got.Domain, tt.wantDomain)
			}
		})
	}
}

func TestAnalyzeURLPathTokenWeightPerToken(t *testing.T) {
	e := newTestEngine()

	one := e.AnalyzeURL("https://example.com/login")
	three := e.AnalyzeURL("https://example.com/login/verify/confirm")

	if want := one.RiskScore + 2*weightPathToken; three.RiskScore != want {
		t.Errorf("three-token score = %d, want %d", three.RiskScore, want)
	}
	if !three.HasFlag("suspicious_path_token") {
		t.Fatal("suspicious_path_token flag missing")
	}
	count := 0
	for _, f := range three.Flags {
		if f == "suspicious_path_token" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("suspicious_path_token recorded %d times, want once", count)
	}
}

func TestAnalyzeURLBrandDetail(t *testing.T) {
	e := newTestEngine()

	got := e.AnalyzeURL("http://g00gle-support.xyz")
	if !got.HasFlag("brand_spoofing") {
		t.Fatalf("expected brand_spoofing, got %v", got.Flags)
	}
	for _, d := range got.Details {
		if d.Rule == "brand_spoof" {
			if d.Brand != "google" {
				t.Errorf("detail brand = %q, want %q", d.Brand, "google")
			}
			return
		}
	}
	t.Error("no brand_spoof detail recorded")
}
