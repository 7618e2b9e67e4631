package validators

import "errors"

// Sentinel errors returned by the validation helpers. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidUsername is returned when a username contains characters
	// outside the safe filename alphabet, is empty, or is over-length.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidSlotNumber is returned when a slot number falls outside
	// the configured [0, MaxSubmitSlot] range.
	ErrInvalidSlotNumber = errors.New("invalid slot number")

	// ErrInvalidUploadFilename is returned when an uploaded file's name
	// does not match the submit naming contract for the authenticated
	// user and target slot.
	ErrInvalidUploadFilename = errors.New("upload filename does not match the submit naming contract")
)

// Password policy errors. The auth service wraps these in
// service.ErrPolicyViolation so callers can match either the broad class or
// the specific rule that fired.
var (
	ErrPasswordTooShort = errors.New("new password is too short")
	ErrPasswordTooLong  = errors.New("new password is too long")

	ErrPasswordSameAsOld   = errors.New("new password cannot be the same as the current password")
	ErrPasswordContainsOld = errors.New("new password must not contain the current password")
	ErrPasswordInsideOld   = errors.New("current password must not contain the new password")
)
