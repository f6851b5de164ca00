package explain

import (
	"strings"

	"phishguard/internal/domain/models"
)

// maxExplainedFlags bounds the fallback to the first flags in rule order,
// which is also rule priority order.
const maxExplainedFlags = 3

// flagExplanations maps each flag in the rule vocabulary to a one-line
// description. Flags outside the vocabulary render as the identifier with
// underscores replaced by spaces.
var flagExplanations = map[string]string{
	models.FlagUrgencyPressure:          "Contains urgent language designed to pressure quick decisions",
	models.FlagOTPKYCRequest:            "Requests sensitive information like OTP or KYC details",
	models.FlagAccountThreat:            "Threatens account suspension or blocking",
	models.FlagLotteryRewardBait:        "Promises prizes, rewards, or lottery winnings",
	models.FlagSuspiciousJobOffer:       "Offers suspicious job with unrealistic earnings",
	models.FlagAuthorityImpersonation:   "May be impersonating banks or government",
	models.FlagMoneyRequest:             "Requests money transfer or payment",
	models.FlagPoorGrammar:              "Contains suspicious grammar patterns",
	models.FlagContainsLink:             "Contains links that need verification",
	models.FlagIPBasedURL:               "URL uses IP address instead of domain name",
	models.FlagPunycodeDomain:           "Domain uses punycode that can disguise lookalike characters",
	models.FlagUserinfoInURL:            "URL hides its real destination behind an @ sign",
	models.FlagNoHTTPS:                  "Connection is not encrypted (no HTTPS)",
	models.FlagSuspiciousTLD:            "Uses suspicious domain extension",
	models.FlagURLShortener:             "Uses URL shortener to hide actual destination",
	models.FlagBrandSpoofing:            "May be impersonating a known brand",
	models.FlagExcessiveSubdomains:      "Has suspicious number of subdomains",
	models.FlagSuspiciousLongURL:        "Unusually long URL",
	models.FlagRandomStringURL:          "Contains random characters in URL",
	models.FlagSuspiciousPathToken:      "URL path mimics login or verification pages",
	models.FlagWeirdDomainChars:         "Domain contains unusual characters",
	models.FlagForeignCountryCode:       "Phone number from foreign country",
	models.FlagInvalidNumberPattern:     "Invalid phone number pattern",
	models.FlagSuspiciousNumberLength:   "Suspicious phone number length",
	models.FlagSuspiciousRepeatedDigits: "Phone has suspicious repeated digits",
}

// Fallback builds a deterministic explanation from the rule findings alone.
// Used whenever the explanation API is unavailable or fails.
func Fallback(req Request) string {
	var parts []string

	switch req.RiskLevel {
	case models.RiskLevelHighRisk:
		parts = append(parts, "⚠️ HIGH RISK: This appears to be a potential scam.")
	case models.RiskLevelSuspicious:
		parts = append(parts, "⚡ SUSPICIOUS: This has some concerning patterns.")
	default:
		parts = append(parts, "✅ LOW RISK: No major red flags detected.")
	}

	if len(req.Flags) > 0 {
		flags := req.Flags
		if len(flags) > maxExplainedFlags {
			flags = flags[:maxExplainedFlags]
		}
		described := make([]string, len(flags))
		for i, f := range flags {
			if text, ok := flagExplanations[f]; ok {
				described[i] = text
			} else {
				described[i] = strings.ReplaceAll(f, "_", " ")
			}
		}
		parts = append(parts, "Detected issues: "+strings.Join(described, "; "))
	}

	if req.RiskLevel == models.RiskLevelHighRisk || req.RiskLevel == models.RiskLevelSuspicious {
		parts = append(parts, "Do NOT click links, share OTP, or send money. Verify through official channels.")
	}

	return strings.Join(parts, " ")
}
