package landing

import (
	"net/http"

	"github.com/louisbranch/aeterna-porta/internal/platform/logging"
	"github.com/louisbranch/aeterna-porta/internal/services/web/module"
	"github.com/louisbranch/aeterna-porta/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/aeterna-porta/internal/services/web/platform/i18n"
	"github.com/louisbranch/aeterna-porta/internal/services/web/platform/pagerender"
	"github.com/louisbranch/aeterna-porta/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/aeterna-porta/internal/services/web/templates"
	"github.com/louisbranch/aeterna-porta/internal/view"
	"go.uber.org/zap"
)

type handlers struct {
	deps   module.Dependencies
	logger *zap.Logger
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps, logger: logging.OrNop(deps.Logger)}
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	page := view.BuildPage(loc, lang)
	err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:    page.Title,
		Lang:     page.Lang,
		Loc:      loc,
		Fragment: webtemplates.LandingPage(page),
	})
	if err != nil {
		h.logger.Error("render landing page",
			zap.String("lang", lang),
			zap.String("request_id", httpx.RequestIDFrom(r)),
			zap.Error(err),
		)
		weberror.WriteAppError(w, r, http.StatusInternalServerError, h.deps)
	}
}

func (handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write([]byte("ok"))
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}
