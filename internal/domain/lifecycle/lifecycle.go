// Package lifecycle holds shared constants for application start and stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps such as
// pinging the database or draining the HTTP server.
const DefaultTimeout = 10 * time.Second
