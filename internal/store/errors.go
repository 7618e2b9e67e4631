package store

import (
	"errors"

	"github.com/MKhiriev/submit-keeper/internal/status"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no record exists for the requested
	// username.
	ErrUserNotFound = errors.New("no such user")

	// ErrCorruptRecord is returned when a persisted record cannot be
	// parsed or fails its load-time consistency checks. The detailed
	// cause is retained server-side via the status register and logs.
	ErrCorruptRecord = errors.New("corrupt record")

	// ErrTimestampRegression is returned when a slot update would move
	// the slot's upload timestamp backwards. This defends against clock
	// skew across retries; the slot is left unchanged.
	ErrTimestampRegression = errors.New("upload timestamp regression")

	// ErrIOFailure is returned (wrapped around the underlying cause) when
	// the filesystem itself fails: unreadable directories, permission
	// problems, failed renames.
	ErrIOFailure = errors.New("storage i/o failure")
)

// fail records err in the process-wide status register and returns it
// unchanged. Every failing repository path goes through here so callers can
// fetch human-readable detail immediately after a failed call.
func fail(err error) error {
	status.SetLastError(err.Error())
	return err
}
