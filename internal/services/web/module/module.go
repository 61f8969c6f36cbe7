// Package module defines the contract between the web service and the
// feature modules it mounts.
package module

import (
	"net/http"

	"go.uber.org/zap"
)

// Dependencies carries shared collaborators into module mounts.
type Dependencies struct {
	Logger *zap.Logger
	// AssetBaseURL prefixes static asset URLs; empty serves them locally.
	AssetBaseURL string
}

// Mount is a module's routing contribution.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module is a mountable feature area.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
