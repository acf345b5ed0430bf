// Package i18n defines the supported locales and tag matching rules.
//
// The site serves England and Wales, so the supported locales are British
// English and Welsh. en-GB is the base locale; every message key must exist
// there.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	english = language.MustParse("en-GB")
	welsh   = language.MustParse("cy")

	supported = []language.Tag{english, welsh}
	matcher   = language.NewMatcher(supported)
)

// SupportedTags returns the list of supported language tags.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// DefaultTag returns the default language tag.
func DefaultTag() language.Tag {
	return english
}

// ParseTag parses a raw tag value against the supported locales.
func ParseTag(value string) (language.Tag, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return language.Tag{}, false
	}
	parsed, err := language.Parse(trimmed)
	if err != nil {
		return language.Tag{}, false
	}
	parsedBase, _ := parsed.Base()
	for _, tag := range supported {
		base, _ := tag.Base()
		if parsedBase == base {
			return tag, true
		}
	}
	return language.Tag{}, false
}

// MatchTags picks the best supported tag for the requested preferences.
func MatchTags(preferences []language.Tag) language.Tag {
	if len(preferences) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(preferences...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supported[index]
}
