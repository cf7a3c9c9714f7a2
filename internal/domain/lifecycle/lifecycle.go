// Package lifecycle holds timing shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each startup check and graceful shutdown.
const DefaultTimeout = 10 * time.Second
