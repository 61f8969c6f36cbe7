// Package i18n resolves the request language for page chrome.
package i18n

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	platformi18n "github.com/louisbranch/aeterna-porta/internal/platform/i18n"
	_ "github.com/louisbranch/aeterna-porta/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "ap_lang"
)

// Localizer exposes translated formatting used by templates and handlers.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag determines the best language tag for the request.
// The bool indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return platformi18n.DefaultTag(), false
	}

	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if tag, ok := platformi18n.ParseTag(langValue); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return platformi18n.MatchTags(tags), false
		}
	}

	return platformi18n.DefaultTag(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer resolves a localized printer and language string for a
// request, persisting an explicit choice.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return Printer(tag), tag.String()
}

// LanguageOptions lists supported languages for the switcher, marking the
// active one and linking each to path with the lang param set.
func LanguageOptions(loc Localizer, path, rawQuery, activeLang string) []LanguageOption {
	active, ok := platformi18n.ParseTag(activeLang)
	if !ok {
		active = platformi18n.DefaultTag()
	}
	supported := platformi18n.SupportedTags()
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		label := tag.String()
		if loc != nil {
			if resolved := strings.TrimSpace(loc.Sprintf("core.lang." + tag.String())); resolved != "" {
				label = resolved
			}
		}
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  label,
			URL:    LanguageURL(path, rawQuery, tag.String()),
			Active: tag == active,
		})
	}
	return options
}

// LanguageURL returns path with the language param updated.
func LanguageURL(path string, rawQuery string, tag string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}
