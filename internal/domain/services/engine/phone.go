package engine

import (
	"strings"

	"phishguard/internal/domain/models"
)

// AnalyzePhone validates a phone number against the calling-code, length
// and digit-shape rules. Formatting characters are stripped first; the
// cleaned number is returned alongside the analysis.
func (e *Engine) AnalyzePhone(raw string) *models.PhoneAnalysis {
	var card scorecard

	cleaned := cleanPhone(raw)

	for _, code := range foreignCountryCodes {
		if strings.HasPrefix(cleaned, code) {
			card.add(weightForeignCode, models.Detail{
				Rule: "foreign_code", Flag: models.FlagForeignCountryCode,
				Points: weightForeignCode, Code: code,
			})
			break
		}
	}

	digits := digitsOnly(cleaned)

	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		card.add(weightLengthIssue, models.Detail{
			Rule: "length_issue", Flag: models.FlagSuspiciousNumberLength,
			Points: weightLengthIssue, Length: len(digits),
		})
	}

	// Indian mobile numbers start with 6, 7, 8 or 9
	if len(digits) == 10 && !strings.ContainsRune("6789", rune(digits[0])) {
		card.add(weightInvalidPattern, models.Detail{
			Rule: "invalid_pattern", Flag: models.FlagInvalidNumberPattern,
			Points: weightInvalidPattern,
		})
	}

	if distinctDigits(lastN(digits, 10)) <= 2 {
		card.add(weightRepeatedDigits, models.Detail{
			Rule: "repeated_digits", Flag: models.FlagSuspiciousRepeatedDigits,
			Points: weightRepeatedDigits,
		})
	}

	// Weaker variant of the check above; skipped entirely when the
	// distinct-digit check already flagged the number
	if !card.has(models.FlagSuspiciousRepeatedDigits) && hasDigitRun(digits, 5) {
		card.add(weightRepeatedSequence, models.Detail{
			Rule: "repeated_sequence", Flag: models.FlagSuspiciousRepeatedDigits,
			Points: weightRepeatedSequence,
		})
	}

	result := &models.PhoneAnalysis{
		Analysis:      card.result(),
		CleanedNumber: cleaned,
	}

	e.logger.Debug().
		Int("risk_score", result.RiskScore).
		Strs("flags", result.Flags).
		Msg("phone analyzed")

	return result
}

// cleanPhone drops spaces, hyphens and parentheses but keeps a leading '+'
// and any other characters so malformed input stays visibly malformed.
func cleanPhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch r {
		case ' ', '\t', '-', '(', ')':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

func distinctDigits(digits string) int {
	var seen [10]bool
	count := 0
	for i := 0; i < len(digits); i++ {
		d := digits[i] - '0'
		if d < 10 && !seen[d] {
			seen[d] = true
			count++
		}
	}
	return count
}

// hasDigitRun reports whether the string contains the same digit repeated
// at least runLen times in a row.
func hasDigitRun(digits string, runLen int) bool {
	run := 0
	for i := 0; i < len(digits); i++ {
		if i > 0 && digits[i] == digits[i-1] {
			run++
		} else {
			run = 1
		}
		if run >= runLen {
			return true
		}
	}
	return false
}
