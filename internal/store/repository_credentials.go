// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/submit-keeper/internal/layout"
	"github.com/MKhiriev/submit-keeper/internal/logger"
	"github.com/MKhiriev/submit-keeper/internal/status"
	"github.com/MKhiriev/submit-keeper/models"
)

// credentialRepository is the file-backed implementation of
// [CredentialRepository]. Each user's record lives in its own JSON file
// under the user's directory and is replaced atomically on every mutation.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, operation-level tracing.
type credentialRepository struct {
	layout *layout.Layout
	locks  keyedMutex
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialRepository] over the given
// filesystem layout.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewCredentialRepository(l *layout.Layout, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		layout: l,
		logger: logger,
	}
}

// Lookup implements [CredentialRepository]. It is a read-only load of the
// on-disk record.
//
// Error handling:
//   - unknown user or missing record → [ErrUserNotFound]
//   - unparsable or inconsistent record → [ErrCorruptRecord], with detail
//     retained in the status register under an incident ID
func (r *credentialRepository) Lookup(ctx context.Context, username string) (models.CredentialRecord, error) {
	path, err := r.layout.CredentialFile(username)
	if err != nil {
		return models.CredentialRecord{}, fail(err)
	}

	record, err := r.readRecord(ctx, path, username)
	if err != nil {
		return models.CredentialRecord{}, err
	}

	status.ClearLastError()
	return record, nil
}

// Save implements [CredentialRepository]. The record's username is validated
// and the user directory created if absent, so administrative tooling can
// seed brand-new accounts with it.
func (r *credentialRepository) Save(ctx context.Context, record models.CredentialRecord) error {
	path, err := r.layout.CredentialFile(record.Username)
	if err != nil {
		return fail(err)
	}

	unlock := r.locks.Lock(record.Username)
	defer unlock()

	if err := r.writeRecord(ctx, path, record); err != nil {
		return err
	}

	status.ClearLastError()
	return nil
}

// Update implements [CredentialRepository]. The whole check-then-write
// sequence runs under the per-username mutex: concurrent updates for the
// same username serialize, different usernames do not block each other.
func (r *credentialRepository) Update(ctx context.Context, username string, apply func(*models.CredentialRecord) error) error {
	path, err := r.layout.CredentialFile(username)
	if err != nil {
		return fail(err)
	}

	unlock := r.locks.Lock(username)
	defer unlock()

	record, err := r.readRecord(ctx, path, username)
	if err != nil {
		return err
	}

	if err := apply(&record); err != nil {
		return fail(err)
	}

	// the apply callback must not be able to break load-time invariants
	if record.Username != username || record.PasswordChangeBy.Before(record.PasswordSetAt) {
		return fail(fmt.Errorf("%w: credential update produced an inconsistent record for %s",
			ErrCorruptRecord, username))
	}

	if err := r.writeRecord(ctx, path, record); err != nil {
		return err
	}

	status.ClearLastError()
	return nil
}

func (r *credentialRepository) readRecord(ctx context.Context, path, username string) (models.CredentialRecord, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return models.CredentialRecord{}, fail(fmt.Errorf("%w: %s", ErrUserNotFound, username))
	}
	if err != nil {
		id := status.Incident(fmt.Sprintf("reading credential record %s: %v", path, err))
		log.Err(err).Str("path", path).Str("incident", id).Msg("credential record unreadable")
		return models.CredentialRecord{}, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	var record models.CredentialRecord
	if err := json.Unmarshal(data, &record); err != nil {
		id := status.Incident(fmt.Sprintf("parsing credential record %s: %v", path, err))
		log.Err(err).Str("path", path).Str("incident", id).Msg("credential record unparsable")
		return models.CredentialRecord{}, fmt.Errorf("%w: credential record for %s", ErrCorruptRecord, username)
	}

	if err := validateCredentialRecord(record, username); err != nil {
		id := status.Incident(fmt.Sprintf("validating credential record %s: %v", path, err))
		log.Err(err).Str("path", path).Str("incident", id).Msg("credential record inconsistent")
		return models.CredentialRecord{}, fmt.Errorf("%w: credential record for %s", ErrCorruptRecord, username)
	}

	return record, nil
}

func (r *credentialRepository) writeRecord(ctx context.Context, path string, record models.CredentialRecord) error {
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		log.Err(err).Str("path", path).Msg("creating user directory failed")
		return fail(fmt.Errorf("%w: creating %s: %w", ErrIOFailure, filepath.Dir(path), err))
	}

	data, err := json.MarshalIndent(record, "", "    ")
	if err != nil {
		return fail(fmt.Errorf("encoding credential record for %s: %w", record.Username, err))
	}
	data = append(data, '\n')

	// credential files carry password hashes, keep them owner-only
	if err := writeFileAtomic(path, data, 0o600); err != nil {
		log.Err(err).Str("path", path).Msg("writing credential record failed")
		return fail(err)
	}

	return nil
}

// validateCredentialRecord is the load-time consistency check of a
// credential record's invariants.
func validateCredentialRecord(record models.CredentialRecord, username string) error {
	if record.Username != username {
		return fmt.Errorf("record username %q does not match %q", record.Username, username)
	}
	if record.PasswordHash == "" {
		return errors.New("record has no password hash")
	}
	if record.PasswordChangeBy.Before(record.PasswordSetAt) {
		return errors.New("password expiry precedes password set time")
	}
	return nil
}
