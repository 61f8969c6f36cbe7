// Package i18n defines the languages the page chrome is translated into.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var supportedTags = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supportedTags)

// SupportedTags returns the supported language tags, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the fallback language.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag parses value and reports whether it maps onto a supported tag.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultTag(), false
	}
	return supportedTags[idx], true
}

// MatchTags picks the best supported tag for an ordered preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, idx, _ := matcher.Match(tags...)
	return supportedTags[idx]
}
