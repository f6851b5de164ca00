package models

// Disclaimer accompanies every analysis response. The service scores risk
// signals; it does not verify whether something actually is a scam.
const Disclaimer = "This is a risk-based analysis, not a verification. Always verify through official channels."

// AnalysisResult is the wire response for one analyzed input
type AnalysisResult struct {
	RequestID   string    `json:"request_id"`
	InputType   InputType `json:"input_type"`
	Language    string    `json:"language"`
	RiskScore   int       `json:"risk_score"`
	RiskLevel   RiskLevel `json:"risk_level"`
	Flags       []string  `json:"flags"`
	Details     []Detail  `json:"details"`
	Explanation string    `json:"explanation"`
	Disclaimer  string    `json:"disclaimer"`
	Cached      bool      `json:"cached"`

	// Message analyses only
	EmbeddedURLs   []string `json:"embedded_urls,omitempty"`
	EmbeddedPhones []string `json:"embedded_phones,omitempty"`

	// URL analyses only
	Domain string `json:"domain,omitempty"`

	// Phone analyses only
	CleanedNumber string `json:"cleaned_number,omitempty"`
}
