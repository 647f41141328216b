package textmeasure

import (
	"golang.org/x/text/language"

	"github.com/gogpu/textmeasure/cache"
)

// LocaleCanonicalizer resolves locale strings to canonical BCP-47
// tags, caching results. Unparsable locales resolve to the empty tag
// rather than being passed through, so downstream consumers only ever
// see well-formed tags.
//
// All methods are safe for concurrent use.
type LocaleCanonicalizer struct {
	cache *cache.Cache[string, string]
}

// NewLocaleCanonicalizer creates a canonicalizer whose cache holds up
// to limit entries. A limit of 0 means unlimited.
func NewLocaleCanonicalizer(limit int) *LocaleCanonicalizer {
	return &LocaleCanonicalizer{cache: cache.New[string, string](limit)}
}

// Canonical returns the canonical BCP-47 tag for locale, or "" when
// the locale cannot be parsed.
func (c *LocaleCanonicalizer) Canonical(locale string) string {
	if locale == "" {
		return ""
	}
	return c.cache.GetOrCreate(locale, func() string {
		t, err := language.Parse(locale)
		if err != nil {
			return ""
		}
		return t.String()
	})
}

// defaultLocales is the process-wide canonicalizer used by
// Paint.SetTextLocale.
var defaultLocales = NewLocaleCanonicalizer(64)

// CanonicalLocale canonicalizes locale using the package-level cache.
func CanonicalLocale(locale string) string {
	return defaultLocales.Canonical(locale)
}
