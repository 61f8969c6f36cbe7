// Package routepath defines the URL paths served by the web service.
package routepath

const (
	// Root is the landing page.
	Root = "/"
	// Health is the liveness probe.
	Health = "/up"
	// StaticPrefix serves embedded assets.
	StaticPrefix = "/static/"
	// APIPrefix groups machine-readable endpoints.
	APIPrefix = "/api/"
	// Manifest serves the deployment manifest as JSON.
	Manifest = APIPrefix + "manifest"
)

// Static returns the URL for an embedded asset name.
func Static(name string) string {
	return StaticPrefix + name
}
