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
	"strconv"
	"time"

	"github.com/MKhiriev/submit-keeper/internal/layout"
	"github.com/MKhiriev/submit-keeper/internal/logger"
	"github.com/MKhiriev/submit-keeper/internal/status"
	"github.com/MKhiriev/submit-keeper/internal/validators"
	"github.com/MKhiriev/submit-keeper/models"
)

// slotRepository is the file-backed implementation of [SlotRepository].
// Every slot is one JSON file under the slot's directory; each mutation
// reads the complete current record, applies one field-level change, and
// replaces the file atomically, so partial-field corruption cannot occur
// mid-update.
type slotRepository struct {
	layout *layout.Layout
	locks  keyedMutex
	logger *logger.Logger

	// now is stubbed in tests that exercise the timestamp-regression
	// defense.
	now func() time.Time
}

// NewSlotRepository constructs a [SlotRepository] over the given filesystem
// layout.
func NewSlotRepository(l *layout.Layout, logger *logger.Logger) SlotRepository {
	logger.Debug().Msg("creating slot repository")
	return &slotRepository{
		layout: l,
		logger: logger,
		now:    time.Now,
	}
}

// GetAllSlots implements [SlotRepository]. It returns all MaxSubmitSlot+1
// records in slot-number order, or [ErrUserNotFound] / [ErrCorruptRecord].
func (r *slotRepository) GetAllSlots(ctx context.Context, username string) (models.SlotTable, error) {
	userDir, err := r.layout.UserDir(username)
	if err != nil {
		return nil, fail(err)
	}

	if _, err := os.Stat(userDir); errors.Is(err, os.ErrNotExist) {
		return nil, fail(fmt.Errorf("%w: %s", ErrUserNotFound, username))
	} else if err != nil {
		return nil, fail(fmt.Errorf("%w: %w", ErrIOFailure, err))
	}

	table := make(models.SlotTable, 0, r.layout.SlotCount())
	for slotNum := 0; slotNum <= r.layout.MaxSubmitSlot(); slotNum++ {
		record, err := r.readSlot(ctx, username, slotNum)
		if err != nil {
			return nil, err
		}
		table = append(table, record)
	}

	status.ClearLastError()
	return table, nil
}

// InitializeUserTree implements [SlotRepository]. It is idempotent: the
// user's root and slot directories are created if absent and a fresh empty
// record is written only for slots that have none. Calling it on every login
// has no side effects beyond the first call.
func (r *slotRepository) InitializeUserTree(ctx context.Context, username string) (models.SlotTable, error) {
	log := logger.FromContext(ctx)

	userDir, err := r.layout.UserDir(username)
	if err != nil {
		return nil, fail(err)
	}

	unlock := r.locks.Lock(username)
	defer unlock()

	if err := os.MkdirAll(userDir, 0o750); err != nil {
		log.Err(err).Str("user_dir", userDir).Msg("creating user directory failed")
		return nil, fail(fmt.Errorf("%w: creating %s: %w", ErrIOFailure, userDir, err))
	}

	table := make(models.SlotTable, 0, r.layout.SlotCount())
	for slotNum := 0; slotNum <= r.layout.MaxSubmitSlot(); slotNum++ {
		slotDir, err := r.layout.SlotDir(username, slotNum)
		if err != nil {
			return nil, fail(err)
		}
		if err := os.MkdirAll(slotDir, 0o750); err != nil {
			log.Err(err).Str("slot_dir", slotDir).Msg("creating slot directory failed")
			return nil, fail(fmt.Errorf("%w: creating %s: %w", ErrIOFailure, slotDir, err))
		}

		slotFile, err := r.layout.SlotFile(username, slotNum)
		if err != nil {
			return nil, fail(err)
		}
		if _, err := os.Stat(slotFile); errors.Is(err, os.ErrNotExist) {
			if err := r.writeSlot(ctx, username, models.NewEmptySlot(slotNum)); err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, fail(fmt.Errorf("%w: %w", ErrIOFailure, err))
		}

		record, err := r.readSlot(ctx, username, slotNum)
		if err != nil {
			return nil, err
		}
		table = append(table, record)
	}

	status.ClearLastError()
	return table, nil
}

// UpdateSlot implements [SlotRepository]. The uploaded file's basename must
// match the submit naming contract for this exact username and slot; the
// whole read-modify-write cycle runs under the per-user-per-slot mutex.
func (r *slotRepository) UpdateSlot(ctx context.Context, username string, slotNum int, uploadedFilePath string) error {
	log := logger.FromContext(ctx)

	if _, err := r.layout.SlotFile(username, slotNum); err != nil {
		return fail(err)
	}

	basename := filepath.Base(uploadedFilePath)
	if err := validators.ValidateUploadFilename(basename, username, slotNum); err != nil {
		return fail(err)
	}

	unlock := r.locks.Lock(slotKey(username, slotNum))
	defer unlock()

	record, err := r.readSlot(ctx, username, slotNum)
	if err != nil {
		return err
	}

	uploadTime := r.now()
	if uploadTime.Unix() < record.UploadedAt {
		return fail(fmt.Errorf("%w: now %d precedes slot %d upload time %d",
			ErrTimestampRegression, uploadTime.Unix(), slotNum, record.UploadedAt))
	}

	record.Occupied = true
	record.Filename = basename
	record.UploadedAt = uploadTime.Unix()

	if err := r.writeSlot(ctx, username, record); err != nil {
		return err
	}

	log.Info().
		Str("username", username).
		Int("slot_num", slotNum).
		Str("filename", basename).
		Msg("slot updated")
	status.ClearLastError()
	return nil
}

// UpdateSlotStatus implements [SlotRepository]. Only the status text
// changes; occupancy, filename, and upload timestamp stay untouched. Used
// by administrative tooling, not by the request path.
func (r *slotRepository) UpdateSlotStatus(ctx context.Context, username string, slotNum int, statusText string) error {
	if _, err := r.layout.SlotFile(username, slotNum); err != nil {
		return fail(err)
	}

	unlock := r.locks.Lock(slotKey(username, slotNum))
	defer unlock()

	record, err := r.readSlot(ctx, username, slotNum)
	if err != nil {
		return err
	}

	record.Status = statusText

	if err := r.writeSlot(ctx, username, record); err != nil {
		return err
	}

	status.ClearLastError()
	return nil
}

// SlotFilePath implements [SlotRepository] by delegating to the layout
// manager.
func (r *slotRepository) SlotFilePath(username string, slotNum int) (string, error) {
	path, err := r.layout.SlotFile(username, slotNum)
	if err != nil {
		return "", fail(err)
	}
	return path, nil
}

func (r *slotRepository) readSlot(ctx context.Context, username string, slotNum int) (models.SlotRecord, error) {
	log := logger.FromContext(ctx)

	path, err := r.layout.SlotFile(username, slotNum)
	if err != nil {
		return models.SlotRecord{}, fail(err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return models.SlotRecord{}, fail(fmt.Errorf("%w: %s has no slot %d", ErrUserNotFound, username, slotNum))
	}
	if err != nil {
		id := status.Incident(fmt.Sprintf("reading slot record %s: %v", path, err))
		log.Err(err).Str("path", path).Str("incident", id).Msg("slot record unreadable")
		return models.SlotRecord{}, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	var record models.SlotRecord
	if err := json.Unmarshal(data, &record); err != nil {
		id := status.Incident(fmt.Sprintf("parsing slot record %s: %v", path, err))
		log.Err(err).Str("path", path).Str("incident", id).Msg("slot record unparsable")
		return models.SlotRecord{}, fmt.Errorf("%w: slot %d of %s", ErrCorruptRecord, slotNum, username)
	}

	if err := validateSlotRecord(record, slotNum); err != nil {
		id := status.Incident(fmt.Sprintf("validating slot record %s: %v", path, err))
		log.Err(err).Str("path", path).Str("incident", id).Msg("slot record inconsistent")
		return models.SlotRecord{}, fmt.Errorf("%w: slot %d of %s", ErrCorruptRecord, slotNum, username)
	}

	return record, nil
}

func (r *slotRepository) writeSlot(ctx context.Context, username string, record models.SlotRecord) error {
	log := logger.FromContext(ctx)

	path, err := r.layout.SlotFile(username, record.SlotNum)
	if err != nil {
		return fail(err)
	}

	data, err := json.MarshalIndent(record, "", "    ")
	if err != nil {
		return fail(fmt.Errorf("encoding slot %d of %s: %w", record.SlotNum, username, err))
	}
	data = append(data, '\n')

	if err := writeFileAtomic(path, data, 0o640); err != nil {
		log.Err(err).Str("path", path).Msg("writing slot record failed")
		return fail(err)
	}

	return nil
}

// validateSlotRecord is the load-time consistency check of a slot record's
// invariants.
func validateSlotRecord(record models.SlotRecord, slotNum int) error {
	if record.SlotNum != slotNum {
		return fmt.Errorf("record slot number %d does not match file position %d", record.SlotNum, slotNum)
	}
	if !record.Occupied && (record.Filename != "" || record.UploadedAt != 0) {
		return errors.New("unoccupied slot carries a filename or upload time")
	}
	if record.Occupied && record.Filename == "" {
		return errors.New("occupied slot has no filename")
	}
	return nil
}

func slotKey(username string, slotNum int) string {
	return username + "/" + strconv.Itoa(slotNum)
}
