package sportradar

import (
	"fmt"
	"slices"
	"strings"
)

// AccessLevel selects the upstream environment and the credential used for it.
type AccessLevel string

const (
	Trial      AccessLevel = "trial"
	Production AccessLevel = "production"
)

// DefaultLocale is used when neither the client nor the call names a locale.
const DefaultLocale = "en"

// Locales lists the language codes the API accepts.
var Locales = []string{
	"en", "aa", "aze", "bg", "br", "bs", "cs", "da", "de", "el", "es", "et", "fi",
	"fr", "heb", "hr", "hu", "id", "it", "ja", "ka", "ko", "lt", "lv", "me", "mk",
	"nl", "no", "pl", "pt", "ro", "ru", "se", "sk", "sl", "sqi", "sr", "srl", "th",
	"tr", "ukr", "vi", "zh", "zht",
}

// ParseAccessLevel converts s into an AccessLevel. An empty string yields Production.
func ParseAccessLevel(s string) (AccessLevel, error) {
	switch level := AccessLevel(strings.ToLower(strings.TrimSpace(s))); level {
	case "":
		return Production, nil
	case Trial, Production:
		return level, nil
	default:
		return "", fmt.Errorf("%w: %q (must be %q or %q)", ErrInvalidAccessLevel, s, Trial, Production)
	}
}

// String implements fmt.Stringer.
func (a AccessLevel) String() string {
	return string(a)
}

// IsValid reports whether a is one of the known access levels.
func (a AccessLevel) IsValid() bool {
	return a == Trial || a == Production
}

func (a AccessLevel) orDefault() AccessLevel {
	if a == "" {
		return Production
	}
	return a
}

// IsSupportedLocale reports whether locale is one of Locales.
func IsSupportedLocale(locale string) bool {
	return slices.Contains(Locales, locale)
}
