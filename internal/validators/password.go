package validators

import "strings"

// ValidatePasswordLength enforces the configured minimum and maximum
// password length bounds on candidate.
func ValidatePasswordLength(candidate string, minLength, maxLength int) error {
	if len(candidate) < minLength {
		return ErrPasswordTooShort
	}
	if len(candidate) > maxLength {
		return ErrPasswordTooLong
	}
	return nil
}

// ValidatePasswordChange enforces the anti-trivial-variation rules on a
// password change: the new password may not equal the old one, may not
// contain it, and may not be contained in it. The containment checks run in
// both directions deliberately — the behavior is preserved exactly from the
// original submission system.
func ValidatePasswordChange(oldPassword, newPassword string) error {
	if newPassword == oldPassword {
		return ErrPasswordSameAsOld
	}
	if strings.Contains(newPassword, oldPassword) {
		return ErrPasswordContainsOld
	}
	if strings.Contains(oldPassword, newPassword) {
		return ErrPasswordInsideOld
	}
	return nil
}
