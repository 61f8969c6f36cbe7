// Package timeouts defines shared timeout constants used by the HTTP surface.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// TelemetryShutdown bounds how long pending spans may take to flush.
const TelemetryShutdown = 5 * time.Second
