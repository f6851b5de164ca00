// Package detect classifies raw input before analysis: what kind of thing
// the user pasted (URL, phone number or free text) and which language the
// text is written in.
package detect

import (
	"regexp"
	"strings"

	"phishguard/internal/domain/models"
)

// Language is the detected script mix of a message
type Language string

const (
	LanguageEnglish  Language = "english"
	LanguageHindi    Language = "hindi"
	LanguageHinglish Language = "hinglish"
)

var (
	// URL detection is anchored: only inputs that start like a URL are
	// routed to the URL analyzer, so a message mentioning a link midway
	// still gets full message analysis.
	urlPrefixPattern = regexp.MustCompile(`^(?i:https?://\S+|www\.\S+|[a-z0-9-]+\.(?:com|org|net|xyz|top|click|info|co|in|io|ly|tk|ml|ga|cf|gq)\S*)`)

	phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]{10,}$`)
)

// Normalize trims the input and collapses internal whitespace runs to a
// single space.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// InputType auto-detects whether the input is a URL, a phone number or a
// free-text message.
func InputType(text string) models.InputType {
	text = strings.TrimSpace(text)

	if urlPrefixPattern.MatchString(text) {
		return models.InputTypeURL
	}
	if phonePattern.MatchString(strings.ReplaceAll(text, " ", "")) {
		return models.InputTypePhone
	}
	return models.InputTypeMessage
}

// Resolve maps a requested input type onto the effective one, running
// auto-detection when the caller did not specify a type.
func Resolve(requested models.InputType, text string) models.InputType {
	switch requested {
	case models.InputTypeMessage, models.InputTypeURL, models.InputTypePhone:
		return requested
	default:
		return InputType(text)
	}
}
