package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/aeterna-porta/internal/services/web/routepath"
)

// ErrorPageTitle returns the localized document title for an error status.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if statusCode == http.StatusNotFound {
		return T(loc, "core.error.not_found.title")
	}
	return T(loc, "core.error.internal.title")
}

// ErrorState renders the localized error body with a link back home.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		bodyKey := "core.error.internal.body"
		if statusCode == http.StatusNotFound {
			bodyKey = "core.error.not_found.body"
		}
		h.open("section", "section error-state", "id", "error", "data-status", itoa(statusCode))
		h.element("h1", "section-heading", ErrorPageTitle(statusCode, loc))
		h.element("p", "section-subtitle", T(loc, bodyKey))
		h.open("a", "btn btn-outline", "href", routepath.Root)
		h.text(T(loc, "core.nav.home"))
		h.close("a")
		h.close("section")
		return h.err
	})
}
