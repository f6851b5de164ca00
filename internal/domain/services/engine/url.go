package engine

import (
	"net/url"
	"strings"

	"phishguard/internal/domain/models"
)

// AnalyzeURL applies the URL checks in order, each independently additive.
// The scheme is optional: http:// is assumed for parsing only, never for
// the plaintext-transport penalty. Malformed input is never an error; the
// raw string doubles as the domain so matching can still proceed.
func (e *Engine) AnalyzeURL(raw string) *models.URLAnalysis {
	var card scorecard

	lower := strings.ToLower(strings.TrimSpace(raw))
	domain, pathname := resolveDomain(lower)

	if ipHostPattern.MatchString(stripPort(domain)) {
		card.add(weightIPBasedURL, models.Detail{
			Rule: "ip_based", Flag: models.FlagIPBasedURL, Points: weightIPBasedURL,
		})
	}

	if strings.Contains(domain, "xn--") {
		card.add(weightPunycode, models.Detail{
			Rule: "punycode", Flag: models.FlagPunycodeDomain, Points: weightPunycode,
		})
	}

	// Classic disguise: text before '@' masquerades as the real domain
	if strings.Contains(lower, "@") {
		card.add(weightUserinfo, models.Detail{
			Rule: "userinfo", Flag: models.FlagUserinfoInURL, Points: weightUserinfo,
		})
	}

	if strings.HasPrefix(lower, "http://") {
		card.add(weightNoHTTPS, models.Detail{
			Rule: "no_https", Flag: models.FlagNoHTTPS, Points: weightNoHTTPS,
		})
	}

	for _, tld := range suspiciousTLDs {
		if strings.HasSuffix(domain, tld) {
			card.add(weightSuspiciousTLD, models.Detail{
				Rule: "suspicious_tld", Flag: models.FlagSuspiciousTLD,
				Points: weightSuspiciousTLD, TLD: tld,
			})
			break
		}
	}

	for _, shortener := range shortenerDomains {
		if strings.Contains(domain, shortener) {
			card.add(weightShortener, models.Detail{
				Rule: "shortener", Flag: models.FlagURLShortener, Points: weightShortener,
			})
			break
		}
	}

	for _, brand := range spoofableBrands {
		if !strings.Contains(domain, brand) && !strings.Contains(deleet(domain), brand) {
			continue
		}
		if isOfficialDomain(domain, brand) {
			continue
		}
		card.add(weightBrandSpoof, models.Detail{
			Rule: "brand_spoof", Flag: models.FlagBrandSpoofing,
			Points: weightBrandSpoof, Brand: brand,
		})
		break
	}

	if count := strings.Count(domain, ".") - 1; count >= subdomainThreshold {
		card.add(weightManySubdomains, models.Detail{
			Rule: "many_subdomains", Flag: models.FlagExcessiveSubdomains,
			Points: weightManySubdomains, Count: count,
		})
	}

	if len(lower) > longURLThreshold {
		card.add(weightLongURL, models.Detail{
			Rule: "long_url", Flag: models.FlagSuspiciousLongURL,
			Points: weightLongURL, Length: len(lower),
		})
	}

	if randomRunPattern.MatchString(lower) {
		card.add(weightRandomString, models.Detail{
			Rule: "random_string", Flag: models.FlagRandomStringURL, Points: weightRandomString,
		})
	}

	// Weight accrues per matching token; the flag and detail appear once
	combined := pathname + " " + lower
	for _, token := range suspiciousPathTokens {
		if strings.Contains(combined, token) {
			card.add(weightPathToken, models.Detail{
				Rule: "suspicious_path", Flag: models.FlagSuspiciousPathToken, Points: weightPathToken,
			})
		}
	}

	// Low-confidence catch-all, gated behind "nothing else fired" so it
	// never dilutes a URL that already has stronger evidence
	if len(card.flags) == 0 && strings.Count(domain, ".") >= 1 && weirdCharPattern.MatchString(domain) {
		card.add(weightWeirdChars, models.Detail{
			Rule: "weird_chars", Flag: models.FlagWeirdDomainChars, Points: weightWeirdChars,
		})
	}

	result := &models.URLAnalysis{
		Analysis: card.result(),
		Domain:   domain,
	}

	e.logger.Debug().
		Int("risk_score", result.RiskScore).
		Str("domain", domain).
		Strs("flags", result.Flags).
		Msg("url analyzed")

	return result
}

// resolveDomain extracts the host and path+query from a URL-like string,
// assuming http:// when no scheme is present. If structured parsing fails
// the raw string is treated as the domain rather than failing the analysis.
func resolveDomain(lower string) (domain, pathname string) {
	target := lower
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		target = "http://" + lower
	}

	parsed, err := url.Parse(target)
	if err != nil || parsed.Host == "" {
		domain = lower
		if i := strings.IndexByte(domain, '/'); i >= 0 {
			domain = domain[:i]
		}
		return domain, ""
	}

	pathname = parsed.Path
	if parsed.RawQuery != "" {
		pathname += "?" + parsed.RawQuery
	}
	return parsed.Host, pathname
}

func stripPort(host string) string {
	if i := strings.IndexByte(host, ':'); i >= 0 {
		return host[:i]
	}
	return host
}

// isOfficialDomain reports whether the host belongs to the brand's own
// domains, so paypal.com never counts as spoofing paypal.
func isOfficialDomain(domain, brand string) bool {
	for _, official := range officialDomains(brand) {
		if domain == official || strings.HasSuffix(domain, official) {
			return true
		}
	}
	return false
}
