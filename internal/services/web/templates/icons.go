package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/aeterna-porta/internal/platform/icons"
)

// Icon renders a reference into the inline Lucide sprite.
func Icon(id icons.ID, class string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		cls := "icon"
		if class != "" {
			cls += " " + class
		}
		h.open("svg", cls, "aria-hidden", "true", "focusable", "false")
		h.raw("<use")
		h.attr("href", "#"+icons.LucideSymbolID(icons.LucideNameOrDefault(id)))
		h.raw("></use>")
		h.close("svg")
		return h.err
	})
}

// IconSprite renders the hidden symbol sheet every Icon points into.
func IconSprite() templ.Component {
	return templ.Raw(icons.LucideSprite())
}
