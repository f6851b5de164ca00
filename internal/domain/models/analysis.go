package models

// InputType identifies which analyzer handles an input
type InputType string

const (
	InputTypeAuto    InputType = "auto"
	InputTypeMessage InputType = "message"
	InputTypeURL     InputType = "url"
	InputTypePhone   InputType = "phone"
)

// RiskLevel is the three-tier verdict derived solely from the risk score
type RiskLevel string

const (
	RiskLevelSafe       RiskLevel = "safe"
	RiskLevelSuspicious RiskLevel = "suspicious"
	RiskLevelHighRisk   RiskLevel = "high_risk"
)

// Flag identifiers emitted by the rule engine. Callers must treat flags
// outside this vocabulary gracefully rather than failing.
const (
	// Message flags
	FlagUrgencyPressure        = "urgency_pressure"
	FlagOTPKYCRequest          = "otp_kyc_request"
	FlagAccountThreat          = "account_threat"
	FlagLotteryRewardBait      = "lottery_reward_bait"
	FlagSuspiciousJobOffer     = "suspicious_job_offer"
	FlagAuthorityImpersonation = "authority_impersonation"
	FlagMoneyRequest           = "money_request"
	FlagPoorGrammar            = "poor_grammar"
	FlagContainsLink           = "contains_link"

	// URL flags
	FlagIPBasedURL          = "ip_based_url"
	FlagPunycodeDomain      = "punycode_domain"
	FlagUserinfoInURL       = "userinfo_in_url"
	FlagNoHTTPS             = "no_https"
	FlagSuspiciousTLD       = "suspicious_tld"
	FlagURLShortener        = "url_shortener"
	FlagBrandSpoofing       = "brand_spoofing"
	FlagExcessiveSubdomains = "excessive_subdomains"
	FlagSuspiciousLongURL   = "suspicious_long_url"
	FlagRandomStringURL     = "random_string_url"
	FlagSuspiciousPathToken = "suspicious_path_token"
	FlagWeirdDomainChars    = "weird_domain_chars"

	// Phone flags
	FlagForeignCountryCode       = "foreign_country_code"
	FlagSuspiciousNumberLength   = "suspicious_number_length"
	FlagInvalidNumberPattern     = "invalid_number_pattern"
	FlagSuspiciousRepeatedDigits = "suspicious_repeated_digits"
)

// Detail records one rule firing, with optional evidence context
type Detail struct {
	Rule   string `json:"rule"`
	Flag   string `json:"flag,omitempty"`
	Points int    `json:"points"`

	// Evidence captured by specific checks
	Brand  string `json:"brand,omitempty"`
	TLD    string `json:"tld,omitempty"`
	Code   string `json:"code,omitempty"`
	Count  int    `json:"count,omitempty"`
	Length int    `json:"length,omitempty"`
}

// Analysis is the result shared by all analyzers. RiskScore is always
// clamped to [0,100] and each flag appears at most once, in insertion order.
type Analysis struct {
	RiskScore int      `json:"risk_score"`
	Flags     []string `json:"flags"`
	Details   []Detail `json:"details"`
}

// HasFlag reports whether the given flag was recorded
func (a *Analysis) HasFlag(flag string) bool {
	for _, f := range a.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// MessageAnalysis is the message analyzer output
type MessageAnalysis struct {
	Analysis
	EmbeddedURLs   []string `json:"embedded_urls"`
	EmbeddedPhones []string `json:"embedded_phones"`
}

// URLAnalysis is the URL analyzer output
type URLAnalysis struct {
	Analysis
	Domain string `json:"domain"`
}

// PhoneAnalysis is the phone analyzer output
type PhoneAnalysis struct {
	Analysis
	CleanedNumber string `json:"cleaned_number"`
}
