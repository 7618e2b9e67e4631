package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/submit-keeper/internal/config"
	"github.com/MKhiriev/submit-keeper/internal/logger"
	"github.com/MKhiriev/submit-keeper/internal/store"
	"github.com/MKhiriev/submit-keeper/internal/validators"
	"github.com/MKhiriev/submit-keeper/models"
)

// authService is the concrete implementation of AuthService. It handles
// credential lookup, password verification, and the password-change
// protocol using a CredentialRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// credentials is the data-access layer for per-user credential records.
	credentials store.CredentialRepository

	// minPasswordLength / maxPasswordLength are the configured policy
	// bounds enforced by IsProperPassword.
	minPasswordLength int
	maxPasswordLength int

	// expiryInterval is added to the change time to produce the new
	// "must change by" deadline on every accepted password change.
	expiryInterval time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger

	// now is stubbed in tests that exercise expiry behavior.
	now func() time.Time
}

// NewAuthService constructs a new AuthService wired to the given
// CredentialRepository and populated with policy parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(credentials store.CredentialRepository, cfg config.Password, logger *logger.Logger) AuthService {
	return &authService{
		credentials:       credentials,
		minPasswordLength: cfg.MinLength,
		maxPasswordLength: cfg.MaxLength,
		expiryInterval:    cfg.ExpiryInterval,
		logger:            logger,
		now:               time.Now,
	}
}

// Lookup loads username's credential record.
//
// Returns the record or:
//   - ErrInvalidDataProvided if username is empty.
//   - A wrapped storage error if the repository call fails (unknown user,
//     corrupt record — see store.ErrUserNotFound, store.ErrCorruptRecord).
func (a *authService) Lookup(ctx context.Context, username string) (models.CredentialRecord, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		log.Error().Msg("empty username provided")
		return models.CredentialRecord{}, ErrInvalidDataProvided
	}

	record, err := a.credentials.Lookup(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("credential lookup failed")
		return models.CredentialRecord{}, fmt.Errorf("credential lookup failed: %w", err)
	}

	return record, nil
}

// VerifyPassword compares candidate against storedHash with bcrypt, which
// is constant-time by construction. Neither the candidate nor the hash is
// ever logged.
func (a *authService) VerifyPassword(candidate, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(candidate)) == nil
}

// IsAllowedToLogin reports false when the account's disabled flag is set.
func (a *authService) IsAllowedToLogin(record models.CredentialRecord) bool {
	return !record.Disabled
}

// MustChangePassword reports true when the current time is at or past the
// record's password-change deadline.
func (a *authService) MustChangePassword(record models.CredentialRecord) bool {
	return !a.now().Before(record.PasswordChangeBy)
}

// IsProperPassword enforces the configured minimum/maximum length bounds.
// Violations are returned as ErrPolicyViolation wrapping the specific rule.
func (a *authService) IsProperPassword(candidate string) error {
	if err := validators.ValidatePasswordLength(candidate, a.minPasswordLength, a.maxPasswordLength); err != nil {
		return fmt.Errorf("%w: %w (allowed length %d..%d)", ErrPolicyViolation, err,
			a.minPasswordLength, a.maxPasswordLength)
	}
	return nil
}

// ChangePassword runs the full password-change protocol as one critical
// section per username (the repository's Update serializes it):
//
//  1. oldPassword is re-verified against the stored hash.
//  2. The anti-trivial-variation rules reject newPassword when it equals,
//     contains, or is contained in oldPassword.
//  3. The length policy is applied to newPassword.
//  4. A fresh bcrypt hash is computed and the record is atomically
//     rewritten with the expiry pushed to now + the configured interval.
//
// Returns ErrWrongPassword, ErrPolicyViolation (wrapping the specific
// rule), or a wrapped storage error.
func (a *authService) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if username == "" || oldPassword == "" || newPassword == "" {
		log.Error().Str("username", username).Msg("incomplete password change request")
		return ErrInvalidDataProvided
	}

	err := a.credentials.Update(ctx, username, func(record *models.CredentialRecord) error {
		if !a.VerifyPassword(oldPassword, record.PasswordHash) {
			return ErrWrongPassword
		}

		if err := validators.ValidatePasswordChange(oldPassword, newPassword); err != nil {
			return fmt.Errorf("%w: %w", ErrPolicyViolation, err)
		}

		if err := a.IsProperPassword(newPassword); err != nil {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing new password: %w", err)
		}

		changedAt := a.now()
		record.PasswordHash = string(hash)
		record.PasswordSetAt = changedAt
		record.PasswordChangeBy = changedAt.Add(a.expiryInterval)
		return nil
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("password change failed")
		return err
	}

	log.Info().Str("username", username).Msg("password changed")
	return nil
}
