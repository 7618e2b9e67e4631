// Package status holds the process-wide "last error" register consumed by
// callers that surface failure detail to operators and, for internal
// failures, to end users via an incident reference.
//
// The register is a diagnostic side channel, not a control mechanism: every
// failing store or service operation still returns an explicit error value,
// and that error is the primary contract. The register is last-write-wins —
// it is overwritten (never appended) on each failure and is therefore only
// meaningful when read synchronously, immediately after the failing call
// returns, before any other operation in the same process executes.
package status

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var (
	mu      sync.Mutex
	lastErr string
)

// SetLastError overwrites the register with msg.
func SetLastError(msg string) {
	mu.Lock()
	defer mu.Unlock()
	lastErr = msg
}

// LastError returns the most recently recorded message, or the empty string
// if no failure has occurred since the last successful store operation.
func LastError() string {
	mu.Lock()
	defer mu.Unlock()
	return lastErr
}

// ClearLastError resets the register. Store operations call it on success so
// a stale message from an earlier failure is never reported for a call that
// worked.
func ClearLastError() {
	mu.Lock()
	defer mu.Unlock()
	lastErr = ""
}

// Incident records msg tagged with a freshly generated incident ID and
// returns that ID. Internal failures (corrupt records, filesystem trouble)
// are reported to users generically; the ID lets an operator correlate the
// user-facing report with the detailed message retained server-side.
func Incident(msg string) string {
	id := uuid.NewString()
	SetLastError(fmt.Sprintf("%s (incident %s)", msg, id))
	return id
}
