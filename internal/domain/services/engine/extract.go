package engine

import (
	"regexp"
	"strings"
)

// maxEmbeddedPerKind bounds how many extracted URLs and phone numbers are
// recursively scored per message. Extras are still reported for display.
// This is the engine's only resource-exhaustion safeguard and guarantees
// constant worst-case work per request.
const maxEmbeddedPerKind = 2

var (
	// Matches full URLs, www-prefixed hosts, common shortener paths and bare
	// domains on a fixed TLD list.
	embeddedURLPattern = regexp.MustCompile(`(?i)https?://[^\s]+|www\.[^\s]+|bit\.ly/[^\s]+|tinyurl\.com/[^\s]+|\b[a-z0-9.-]+\.(?:com|org|net|in|io|co|xyz|top|click|info|ly|tk|ml|ga|cf|gq)\b`)

	embeddedPhonePattern = regexp.MustCompile(`\+?[0-9]{10,13}`)
)

// ExtractURLs returns URL-like substrings found in free text, in order of
// appearance. Duplicates are preserved.
func ExtractURLs(text string) []string {
	return embeddedURLPattern.FindAllString(text, -1)
}

// ExtractPhones returns phone-number-like substrings found in free text.
// Spaces and hyphens are stripped before matching so formatted numbers
// ("98765 43210", "98765-43210") are found as one token.
func ExtractPhones(text string) []string {
	compact := strings.ReplaceAll(strings.ReplaceAll(text, " ", ""), "-", "")
	return embeddedPhonePattern.FindAllString(compact, -1)
}
