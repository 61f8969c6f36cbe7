package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/aeterna-porta/internal/view"
)

// LandingPage renders the hero banner followed by every page section.
func LandingPage(page view.Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.render(ctx, HeroBanner(page.Hero))
		for _, section := range page.Sections {
			h.render(ctx, SectionBlock(section))
		}
		return h.err
	})
}

// HeroBanner renders the introductory banner. Its actions are decorative.
func HeroBanner(hero view.Hero) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.open("section", "section hero", "id", view.SectionHero)
		h.open("span", "badge badge-hero")
		h.render(ctx, Icon(hero.Badge.Icon, "badge-icon"))
		h.text(hero.Badge.Label)
		h.close("span")

		h.open("h1", "hero-title")
		h.text(hero.Title)
		h.raw(" ")
		h.element("span", "hero-version", hero.Version)
		h.close("h1")
		h.element("p", "hero-tagline", hero.Tagline)
		h.element("p", "hero-summary", hero.Summary)

		h.open("div", "hero-actions")
		for _, action := range hero.Actions {
			class := "btn btn-outline"
			if action.Primary {
				class = "btn btn-primary"
			}
			h.open("button", class, "type", "button")
			h.render(ctx, Icon(action.Icon, "btn-icon"))
			h.text(action.Label)
			h.close("button")
		}
		h.close("div")

		h.open("div", "hero-stats")
		for _, stat := range hero.Stats {
			h.open("div", "stat tone-"+string(stat.Tone))
			h.element("span", "stat-value", stat.Value)
			h.element("span", "stat-label", stat.Label)
			h.close("div")
		}
		h.close("div")
		h.close("section")
		return h.err
	})
}

// SectionBlock renders a section heading, its card grid and any panels.
func SectionBlock(section view.Section) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.open("section", "section section-"+section.ID, "id", section.ID)
		h.open("header", "section-header")
		if section.Badge != nil {
			h.open("span", "badge badge-status")
			h.render(ctx, Icon(section.Badge.Icon, "badge-icon"))
			h.text(section.Badge.Label)
			h.close("span")
		}
		h.element("h2", "section-heading", section.Heading)
		if section.Subtitle != "" {
			h.element("p", "section-subtitle", section.Subtitle)
		}
		h.close("header")

		if len(section.Cards) > 0 {
			h.open("div", "grid grid-cols-"+itoa(section.Columns))
			for _, card := range section.Cards {
				h.render(ctx, CardView(card))
			}
			h.close("div")
		}
		if len(section.Panels) > 0 {
			h.open("div", "grid grid-cols-"+itoa(section.Columns))
			for _, panel := range section.Panels {
				h.render(ctx, PanelView(panel))
			}
			h.close("div")
		}
		if section.Note != "" {
			h.element("p", "section-note", section.Note)
		}
		h.close("section")
		return h.err
	})
}

// PanelView renders a titled group of compact cards.
func PanelView(panel view.Panel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.open("div", "panel tone-"+string(panel.Tone))
		h.open("h3", "panel-title")
		h.render(ctx, Icon(panel.Icon, "panel-icon"))
		h.text(panel.Title)
		h.close("h3")
		h.open("div", "panel-items")
		for _, card := range panel.Cards {
			h.render(ctx, CardView(card))
		}
		h.close("div")
		if panel.Callout != nil {
			h.open("div", "callout")
			h.element("p", "callout-label", panel.Callout.Label)
			h.raw("<pre>")
			h.element("code", "callout-code", panel.Callout.Code)
			h.raw("</pre>")
			h.close("div")
		}
		h.close("div")
		return h.err
	})
}
