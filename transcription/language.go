package transcription

import (
	"strings"

	"github.com/kbukum/scribekit/errors"
)

// Language is a language hint passed to a backend. The zero value asks the
// backend to detect the language.
type Language string

// Supported language hints.
const (
	LanguageAuto    Language = ""
	LanguageEnglish Language = "en"
	// LanguageEnglishUS selects US English, the only hint for which the
	// remote backend requests a summary.
	LanguageEnglishUS Language = "en_us"
	LanguageItalian   Language = "it"
	LanguageSpanish   Language = "es"
	LanguageFrench    Language = "fr"
	LanguageGerman    Language = "de"
)

// AutoKeyword is how auto-detection is spelled on the command line and in config.
const AutoKeyword = "auto"

var supportedLanguages = []Language{
	LanguageEnglish,
	LanguageEnglishUS,
	LanguageItalian,
	LanguageSpanish,
	LanguageFrench,
	LanguageGerman,
}

// SupportedLanguages returns the explicit language codes, excluding auto.
func SupportedLanguages() []Language {
	return append([]Language(nil), supportedLanguages...)
}

// ParseLanguage validates a language code. Empty input and "auto" select
// auto-detection.
func ParseLanguage(s string) (Language, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == AutoKeyword {
		return LanguageAuto, nil
	}
	for _, l := range supportedLanguages {
		if Language(s) == l {
			return l, nil
		}
	}
	return "", errors.InvalidInput("language", "unsupported language code "+s)
}

// IsAuto reports whether l asks for auto-detection.
func (l Language) IsAuto() bool { return l == LanguageAuto }

// String returns the code, or "auto" for auto-detection.
func (l Language) String() string {
	if l.IsAuto() {
		return AutoKeyword
	}
	return string(l)
}
