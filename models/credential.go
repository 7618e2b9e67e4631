// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CredentialRecord holds the on-disk authentication state of a single
// contest participant. One record is persisted per user as a JSON file and
// replaced atomically on every mutation.
// Sensitive fields must never be exposed outside trusted boundaries.
type CredentialRecord struct {
	// Username is the unique account identifier. It is restricted to a
	// safe filename alphabet because it doubles as a directory name under
	// the storage top directory.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// This value MUST be a salted, irreversible hash — never plaintext.
	PasswordHash string `json:"pwhash"`

	// PasswordSetAt is the moment the current password was established.
	PasswordSetAt time.Time `json:"pw_set_at"`

	// PasswordChangeBy is the deadline by which the user must change
	// their password. Invariant: never earlier than PasswordSetAt.
	PasswordChangeBy time.Time `json:"pw_change_by"`

	// Disabled blocks the account from logging in when set.
	Disabled bool `json:"disabled"`

	// DisabledReason is an operator-supplied note explaining why the
	// account was disabled. Empty for enabled accounts.
	DisabledReason string `json:"disabled_reason,omitempty"`
}
