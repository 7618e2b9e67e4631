package service

import (
	"context"
	"time"

	"github.com/MKhiriev/submit-keeper/models"
)

// AuthService answers credential questions for the web layer and carries
// the password-change protocol.
type AuthService interface {
	// Lookup loads username's credential record.
	Lookup(ctx context.Context, username string) (models.CredentialRecord, error)

	// VerifyPassword compares candidate against a stored bcrypt hash.
	// The comparison is constant-time; the candidate is never logged.
	VerifyPassword(candidate, storedHash string) bool

	// IsAllowedToLogin reports whether the account may log in at all.
	IsAllowedToLogin(record models.CredentialRecord) bool

	// MustChangePassword reports whether the password-change deadline has
	// passed.
	MustChangePassword(record models.CredentialRecord) bool

	// IsProperPassword enforces the configured length bounds on candidate.
	// The substring rules of the change protocol are enforced by
	// ChangePassword, not here.
	IsProperPassword(candidate string) error

	// ChangePassword re-verifies oldPassword, applies the full password
	// policy, and atomically rewrites the record with a fresh hash and a
	// pushed-out expiry. Serialized per username.
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
}

// SubmitService is the slot-table surface consumed by the web layer and
// administrative tooling.
type SubmitService interface {
	GetAllSlots(ctx context.Context, username string) (models.SlotTable, error)
	InitializeUserTree(ctx context.Context, username string) (models.SlotTable, error)
	UpdateSlot(ctx context.Context, username string, slotNum int, uploadedFilePath string) error
	UpdateSlotStatus(ctx context.Context, username string, slotNum int, statusText string) error
	SlotFilePath(username string, slotNum int) (string, error)
}

// ContestService is the contest window oracle.
type ContestService interface {
	// IsOpen reports whether submission is permitted at the given moment
	// and, when it is, the close time for display.
	IsOpen(now time.Time) (closeAt time.Time, open bool)
}
