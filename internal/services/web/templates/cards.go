package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/aeterna-porta/internal/view"
)

// CardView renders one card in the arrangement its layout names.
func CardView(card view.Card) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		class := "card card-" + string(card.Kind) + " tone-" + string(card.Tone)
		if card.Layout == view.LayoutInline {
			h.open("div", class+" card-inline", "data-key", card.Key)
			h.render(ctx, Icon(card.Icon, "card-icon"))
			if card.Kind == view.KindFile {
				h.element("code", "card-title", card.Title)
			} else {
				h.element("span", "card-title", card.Title)
			}
			if card.Description != "" {
				h.element("span", "card-description", card.Description)
			}
			h.close("div")
			return h.err
		}

		h.open("article", class, "data-key", card.Key)
		h.open("header", "card-header")
		if card.Kind == view.KindStage {
			h.element("span", "card-number", card.Badge)
		}
		h.render(ctx, Icon(card.Icon, "card-icon"))
		h.open("div", "card-heading")
		h.element("h3", "card-title", card.Title)
		if card.Subtitle != "" {
			h.element("p", "card-subtitle", card.Subtitle)
		}
		if card.Formula != "" {
			h.element("code", "card-formula", card.Formula)
		}
		h.close("div")
		if card.Kind == view.KindDiscovery && card.Badge != "" {
			h.element("span", "badge card-badge", card.Badge)
		}
		h.close("header")
		h.element("p", "card-description", card.Description)

		switch card.Layout {
		case view.LayoutMetrics:
			h.open("div", "card-metrics grid-cols-"+itoa(view.MetricColumns))
			for _, row := range card.Rows {
				h.open("div", "metric")
				h.element("span", "metric-value", row.Value)
				h.element("span", "metric-label", row.Label)
				h.close("div")
			}
			h.close("div")
		default:
			h.open("dl", "card-rows")
			for _, row := range card.Rows {
				h.open("div", "card-row")
				h.element("dt", "card-row-label", row.Label)
				h.element("dd", "card-row-value", row.Value)
				h.close("div")
			}
			h.close("dl")
		}
		h.close("article")
		return h.err
	})
}
