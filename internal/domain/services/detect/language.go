package detect

// Devanagari Unicode block
const (
	devanagariLo = 0x0900
	devanagariHi = 0x097F
)

// LanguageDetector classifies text by script mix. Scam messages in this
// corpus arrive in English, Hindi or the blended hinglish (Devanagari and
// Latin letters in the same message), and the explanation collaborator
// needs the distinction to answer in kind.
type LanguageDetector struct{}

// NewLanguageDetector creates a language detector
func NewLanguageDetector() *LanguageDetector {
	return &LanguageDetector{}
}

// Detect counts Devanagari and Latin letters and classifies the mix.
// Text with no letters of either script defaults to english.
func (d *LanguageDetector) Detect(text string) Language {
	var hindi, latin int
	for _, r := range text {
		switch {
		case r >= devanagariLo && r <= devanagariHi:
			hindi++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			latin++
		}
	}

	switch {
	case hindi == 0 && latin == 0:
		return LanguageEnglish
	case hindi > latin:
		return LanguageHindi
	case hindi > 0 && latin > 0:
		return LanguageHinglish
	default:
		return LanguageEnglish
	}
}
