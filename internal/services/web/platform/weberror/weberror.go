// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"

	module "github.com/louisbranch/aeterna-porta/internal/services/web/module"
	"github.com/louisbranch/aeterna-porta/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/aeterna-porta/internal/services/web/platform/i18n"
	"github.com/louisbranch/aeterna-porta/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/aeterna-porta/internal/services/web/templates"
	"go.uber.org/zap"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// WriteAppError writes a localized error page for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	loc, lang := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WriteModulePage(w, r, deps, pagerender.ModulePage{
		Title:      webtemplates.ErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Lang:       lang,
		Loc:        loc,
		Fragment:   webtemplates.ErrorState(statusCode, loc),
	})
	if err == nil {
		return
	}
	if deps.Logger != nil {
		deps.Logger.Error("render error page",
			zap.Int("status", statusCode),
			zap.String("request_id", httpx.RequestIDFrom(r)),
			zap.Error(err),
		)
	}
	http.Error(w, http.StatusText(statusCode), statusCode)
}
