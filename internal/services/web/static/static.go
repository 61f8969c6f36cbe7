// Package static embeds the stylesheet served under /static/.
package static

import "embed"

// FS exposes static assets for HTTP serving.
//
//go:embed *.css
var FS embed.FS
