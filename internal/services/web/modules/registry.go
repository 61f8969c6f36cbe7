package modules

import (
	"github.com/louisbranch/aeterna-porta/internal/services/web/modules/landing"
	"github.com/louisbranch/aeterna-porta/internal/services/web/modules/manifest"
)

// DefaultModules returns every module the web service mounts.
func DefaultModules() []Module {
	return []Module{
		landing.New(),
		manifest.New(),
	}
}
