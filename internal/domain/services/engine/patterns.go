package engine

import "phishguard/internal/domain/models"

// MessageRuleInfo describes one message rule without exposing its compiled
// patterns.
type MessageRuleInfo struct {
	Name   string `json:"name"`
	Flag   string `json:"flag"`
	Weight int    `json:"weight"`
}

// PatternCatalog is the rule metadata served to clients that want to do
// local pre-filtering before calling the API.
type PatternCatalog struct {
	Flags                []string          `json:"flags"`
	MessageRules         []MessageRuleInfo `json:"message_rules"`
	SuspiciousTLDs       []string          `json:"suspicious_tlds"`
	ShortenerDomains     []string          `json:"shortener_domains"`
	SpoofableBrands      []string          `json:"spoofable_brands"`
	SuspiciousPathTokens []string          `json:"suspicious_path_tokens"`
	ForeignCountryCodes  []string          `json:"foreign_country_codes"`
}

// Patterns returns the rule catalog. Slices are copied so callers cannot
// mutate the tables.
func Patterns() PatternCatalog {
	rules := make([]MessageRuleInfo, len(messageRules))
	for i, r := range messageRules {
		rules[i] = MessageRuleInfo{Name: r.Name, Flag: r.Flag, Weight: r.Weight}
	}

	return PatternCatalog{
		Flags: []string{
			models.FlagUrgencyPressure,
			models.FlagOTPKYCRequest,
			models.FlagAccountThreat,
			models.FlagLotteryRewardBait,
			models.FlagSuspiciousJobOffer,
			models.FlagAuthorityImpersonation,
			models.FlagMoneyRequest,
			models.FlagPoorGrammar,
			models.FlagContainsLink,
			models.FlagIPBasedURL,
			models.FlagPunycodeDomain,
			models.FlagUserinfoInURL,
			models.FlagNoHTTPS,
			models.FlagSuspiciousTLD,
			models.FlagURLShortener,
			models.FlagBrandSpoofing,
			models.FlagExcessiveSubdomains,
			models.FlagSuspiciousLongURL,
			models.FlagRandomStringURL,
			models.FlagSuspiciousPathToken,
			models.FlagWeirdDomainChars,
			models.FlagForeignCountryCode,
			models.FlagSuspiciousNumberLength,
			models.FlagInvalidNumberPattern,
			models.FlagSuspiciousRepeatedDigits,
		},
		MessageRules:         rules,
		SuspiciousTLDs:       append([]string(nil), suspiciousTLDs...),
		ShortenerDomains:     append([]string(nil), shortenerDomains...),
		SpoofableBrands:      append([]string(nil), spoofableBrands...),
		SuspiciousPathTokens: append([]string(nil), suspiciousPathTokens...),
		ForeignCountryCodes:  append([]string(nil), foreignCountryCodes...),
	}
}
