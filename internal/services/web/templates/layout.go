package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/aeterna-porta/internal/platform/branding"
	webi18n "github.com/louisbranch/aeterna-porta/internal/services/web/platform/i18n"
)

// MainID is the element id HTMX swaps page fragments into.
const MainID = "main"

// LayoutOptions carries document chrome for a full page response.
type LayoutOptions struct {
	Title         string
	Lang          string
	Loc           Localizer
	StylesheetURL string
	Languages     []webi18n.LanguageOption

	// InlineCSS is embedded in a style element, for standalone exports.
	InlineCSS string
}

// Layout renders the full HTML document around the children component.
func Layout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		title := opts.Title
		if title == "" {
			title = branding.PageTitle()
		}
		lang := opts.Lang
		if lang == "" {
			lang = "en-US"
		}
		h.raw("<!DOCTYPE html>")
		h.open("html", "", "lang", lang)
		h.raw(`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.element("title", "", title)
		if opts.StylesheetURL != "" {
			h.raw(`<link rel="stylesheet"`)
			h.attr("href", opts.StylesheetURL)
			h.raw(">")
		}
		if opts.InlineCSS != "" {
			h.raw("<style>")
			h.raw(opts.InlineCSS)
			h.raw("</style>")
		}
		h.raw("</head>")
		h.open("body", "page")
		h.render(ctx, IconSprite())
		h.render(ctx, languageSwitcher(opts.Loc, opts.Languages))
		h.render(ctx, MainContent())
		h.close("body")
		h.close("html")
		return h.err
	})
}

// MainContent wraps the children component in the swappable main element.
func MainContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.open("main", "page-main", "id", MainID)
		h.render(ctx, templ.GetChildren(ctx))
		h.close("main")
		return h.err
	})
}

func languageSwitcher(loc Localizer, options []webi18n.LanguageOption) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if len(options) == 0 {
			return nil
		}
		label := "Language"
		if loc != nil {
			label = T(loc, "core.lang.label")
		}
		h := newHTMLWriter(w)
		h.open("nav", "lang-switch", "aria-label", label)
		for _, option := range options {
			class := "lang-switch-link"
			if option.Active {
				class += " is-active"
			}
			h.open("a", class, "href", option.URL, "hreflang", option.Tag)
			h.text(option.Label)
			h.close("a")
		}
		h.close("nav")
		return h.err
	})
}
