// Package lifecycle holds shared constants for component startup and
// shutdown coordination.
package lifecycle

import "time"

// DefaultTimeout bounds every lifecycle hook: startup probes and graceful
// shutdown alike.
const DefaultTimeout = 10 * time.Second
