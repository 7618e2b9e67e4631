// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// submit-keeper application. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds the filesystem layout settings: the storage top
	// directory and the slot table size.
	Storage Storage `envPrefix:"STORAGE_"`

	// Password holds the password policy: length bounds and the expiry
	// interval applied on every successful password change.
	Password Password `envPrefix:"PASSWORD_"`

	// Contest holds the global contest window timestamps.
	Contest Contest `envPrefix:"CONTEST_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage holds the filesystem layout settings of the record store.
type Storage struct {
	// TopDir is the storage root under which all per-user state lives.
	// Must exist and be writable at startup; an unusable top directory is
	// the one fatal startup condition.
	// Env: STORAGE_TOP_DIR
	TopDir string `env:"TOP_DIR"`

	// MaxSubmitSlot is the inclusive upper bound of slot numbers. Every
	// user owns exactly MaxSubmitSlot+1 slots, numbered from 0.
	// Env: STORAGE_MAX_SUBMIT_SLOT
	MaxSubmitSlot int `env:"MAX_SUBMIT_SLOT" envDefault:"9"`
}

// Password holds the password policy parameters enforced by the auth
// service.
type Password struct {
	// MinLength is the minimum accepted password length in bytes.
	// Env: PASSWORD_MIN_LENGTH
	MinLength int `env:"MIN_LENGTH" envDefault:"15"`

	// MaxLength is the maximum accepted password length in bytes.
	// Env: PASSWORD_MAX_LENGTH
	MaxLength int `env:"MAX_LENGTH" envDefault:"40"`

	// ExpiryInterval is added to the change time to produce the new
	// "must change by" deadline on every successful password change
	// (e.g. "8760h" for one year).
	// Env: PASSWORD_EXPIRY_INTERVAL
	ExpiryInterval time.Duration `env:"EXPIRY_INTERVAL" envDefault:"8760h"`
}

// Contest holds the global submission window. Both values are RFC3339
// timestamps; the window is open from OpenAt inclusive to CloseAt exclusive.
type Contest struct {
	// OpenAt is the moment uploads start being accepted.
	// Env: CONTEST_OPEN_AT
	OpenAt time.Time `env:"OPEN_AT"`

	// CloseAt is the moment uploads stop being accepted.
	// Env: CONTEST_CLOSE_AT
	CloseAt time.Time `env:"CLOSE_AT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables (after an optional .env file is loaded)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
