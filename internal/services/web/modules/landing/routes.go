package landing

import (
	"net/http"

	"github.com/louisbranch/aeterna-porta/internal/services/web/platform/httpx"
	"github.com/louisbranch/aeterna-porta/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleRoot)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	httpx.RejectWrites(mux, routepath.Root+"{$}")
	mux.HandleFunc(http.MethodGet+" /{rest...}", h.handleNotFound)
}
