// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks such as database pings and server
// shutdown so a stuck dependency cannot hang the process indefinitely.
const DefaultTimeout = 10 * time.Second
