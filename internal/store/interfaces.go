package store

import (
	"context"

	"github.com/MKhiriev/submit-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mocks.go -package=mock

// CredentialRepository loads and atomically rewrites per-user credential
// records.
type CredentialRepository interface {
	// Lookup is the read-only load of username's credential record.
	Lookup(ctx context.Context, username string) (models.CredentialRecord, error)

	// Save atomically replaces username's credential record, creating the
	// user directory if needed. Used by administrative tooling to seed
	// accounts.
	Save(ctx context.Context, record models.CredentialRecord) error

	// Update runs apply against the current record inside the per-username
	// critical section and atomically persists the result. If apply returns
	// an error the record is left untouched and that error is returned.
	Update(ctx context.Context, username string, apply func(*models.CredentialRecord) error) error
}

// SlotRepository loads and atomically rewrites per-user slot records.
type SlotRepository interface {
	// GetAllSlots returns all of username's slot records in slot-number
	// order.
	GetAllSlots(ctx context.Context, username string) (models.SlotTable, error)

	// InitializeUserTree idempotently creates username's directory tree
	// and empty slot records, then returns the full table. Safe to call
	// on every login; after the first call it mutates nothing.
	InitializeUserTree(ctx context.Context, username string) (models.SlotTable, error)

	// UpdateSlot records an accepted upload: it validates the slot number
	// and the uploaded file's basename against the submit naming contract,
	// then marks the slot occupied with the basename and the current time.
	UpdateSlot(ctx context.Context, username string, slotNum int, uploadedFilePath string) error

	// UpdateSlotStatus overwrites only the status text of one slot,
	// leaving occupancy, filename, and timestamp untouched.
	UpdateSlotStatus(ctx context.Context, username string, slotNum int, statusText string) error

	// SlotFilePath returns the path of the slot's JSON state file for
	// external callers such as post-processing pipelines.
	SlotFilePath(username string, slotNum int) (string, error)
}
