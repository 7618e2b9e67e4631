// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the structural contracts of the submission
// store: username alphabet, slot-number bounds (via the layout package),
// the upload filename form, and the password policy rules.
package validators

import (
	"fmt"
	"regexp"
	"strconv"
)

// MaxUsernameLength bounds usernames so a single name can never blow up a
// path component. Usernames double as directory names under the storage
// top directory.
const MaxUsernameLength = 40

// usernameRegexp is the safe filename alphabet: a leading alphanumeric
// followed by alphanumerics, dot, underscore, plus, or hyphen.
var usernameRegexp = regexp.MustCompile(`^[0-9A-Za-z][0-9A-Za-z._+-]*$`)

// ValidateUsername reports whether username is usable as an account name
// and as a path component. Returns ErrInvalidUsername (wrapped with detail)
// when it is not.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("%w: empty username", ErrInvalidUsername)
	}
	if len(username) > MaxUsernameLength {
		return fmt.Errorf("%w: username is longer than %d characters", ErrInvalidUsername, MaxUsernameLength)
	}
	if !usernameRegexp.MatchString(username) {
		return fmt.Errorf("%w: username must match %s", ErrInvalidUsername, usernameRegexp.String())
	}
	return nil
}

// UploadFilenamePattern returns the regular expression an uploaded tarball's
// basename must match for the given user and slot:
//
//	submit.<username>-<slotNum>.<unixTimestamp>.txz
//
// where the timestamp is at least ten base-10 digits starting with a nonzero
// digit (roughly year-2001-or-later epoch seconds). The pattern is also used
// verbatim in user-facing rejection messages so submitters can self-correct.
func UploadFilenamePattern(username string, slotNum int) string {
	return `^submit\.` + regexp.QuoteMeta(username) + `-` + strconv.Itoa(slotNum) + `\.[1-9][0-9]{9,}\.txz$`
}

// ValidateUploadFilename checks filename (a basename, no path separators)
// against the submit naming contract for the exact username and slot being
// updated. Returns ErrInvalidUploadFilename wrapped with the expected
// pattern on mismatch.
func ValidateUploadFilename(filename, username string, slotNum int) error {
	pattern := UploadFilenamePattern(username, slotNum)
	matched, err := regexp.MatchString(pattern, filename)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUploadFilename, err)
	}
	if !matched {
		return fmt.Errorf("%w: filename for slot %d must match %s", ErrInvalidUploadFilename, slotNum, pattern)
	}
	return nil
}
