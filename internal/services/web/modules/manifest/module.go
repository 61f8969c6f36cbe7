// Package manifest serves the static deployment manifest as JSON.
package manifest

import (
	"net/http"

	"github.com/louisbranch/aeterna-porta/internal/content"
	"github.com/louisbranch/aeterna-porta/internal/platform/logging"
	module "github.com/louisbranch/aeterna-porta/internal/services/web/module"
	"github.com/louisbranch/aeterna-porta/internal/services/web/platform/httpx"
	"github.com/louisbranch/aeterna-porta/internal/services/web/routepath"
	"go.uber.org/zap"
)

// Module serves machine-readable endpoints under the API prefix.
type Module struct{}

// New returns the manifest module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "manifest" }

// Mount wires manifest routes under /api/.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	logger := logging.OrNop(deps.Logger)
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Manifest, func(w http.ResponseWriter, r *http.Request) {
		if err := httpx.WriteJSON(w, http.StatusOK, content.Manifest()); err != nil {
			logger.Warn("write manifest", zap.String("request_id", httpx.RequestIDFrom(r)), zap.Error(err))
		}
	})
	httpx.RejectWrites(mux, routepath.Manifest)
	mux.HandleFunc(routepath.APIPrefix+"{rest...}", func(w http.ResponseWriter, _ *http.Request) {
		_ = httpx.WriteJSON(w, http.StatusNotFound, errorBody{Error: http.StatusText(http.StatusNotFound)})
	})
	return module.Mount{Prefix: routepath.APIPrefix, Handler: mux}, nil
}

type errorBody struct {
	Error string `json:"error"`
}
