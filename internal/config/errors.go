package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty top directory or a negative slot bound).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidPasswordConfigs indicates an unsatisfiable password policy
	// (for example, a minimum length above the maximum, or a zero expiry
	// interval).
	ErrInvalidPasswordConfigs = errors.New("invalid password policy configuration")
	// ErrInvalidContestConfigs indicates an inverted contest window
	// (close timestamp earlier than open).
	ErrInvalidContestConfigs = errors.New("invalid contest window configuration")
)
