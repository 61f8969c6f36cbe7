// Package landing serves the AETERNA-PORTA overview page.
package landing

import (
	"net/http"

	module "github.com/louisbranch/aeterna-porta/internal/services/web/module"
	"github.com/louisbranch/aeterna-porta/internal/services/web/routepath"
)

// Module serves the overview page, the health probe and the not-found fallback.
type Module struct{}

// New returns the landing module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "landing" }

// Mount wires landing routes at the root prefix.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
