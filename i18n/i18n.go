// Package i18n defines the supported locales, the locale cookie, and the
// Accept-Language mapping used by the edge router.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is one of the supported UI locales.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleRU Locale = "ru"
	LocaleES Locale = "es"
)

// DefaultLocale is the fallback when neither cookie nor header resolve.
const DefaultLocale = LocaleEN

// CookieName is the persisted-locale cookie.
const CookieName = "MT_LOCALE"

// Locales lists every supported locale.
var Locales = []Locale{LocaleEN, LocaleRU, LocaleES}

// IsSupported reports whether s names a supported locale.
func IsSupported(s string) bool {
	for _, locale := range Locales {
		if string(locale) == s {
			return true
		}
	}
	return false
}

// MapLanguage maps an Accept-Language header value to a supported locale.
// Only the first comma-separated entry is considered; its region subtag is
// ignored. Unknown or empty input resolves to the default. Never fails.
func MapLanguage(acceptLanguage string) Locale {
	if acceptLanguage == "" {
		return DefaultLocale
	}

	entry := strings.TrimSpace(strings.Split(acceptLanguage, ",")[0])
	// entries may carry a quality suffix, e.g. "ru-RU;q=0.9"
	entry = strings.TrimSpace(strings.Split(entry, ";")[0])
	if entry == "" {
		return DefaultLocale
	}

	tag, err := language.Parse(entry)
	if err != nil {
		return DefaultLocale
	}

	base, _ := tag.Base()
	switch base.String() {
	case "ru":
		return LocaleRU
	case "es":
		return LocaleES
	default:
		return DefaultLocale
	}
}

// Resolve determines the effective locale for a request: a valid locale
// cookie wins, otherwise the Accept-Language header, otherwise the default.
func Resolve(cookieValue, acceptLanguage string) Locale {
	if IsSupported(cookieValue) {
		return Locale(cookieValue)
	}
	return MapLanguage(acceptLanguage)
}
