// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package layout computes and validates the canonical filesystem paths of
// the submission store. It is a pure path calculator: no function here
// creates, reads, or writes anything except [Layout.CheckTopDir], which is
// the explicit startup probe of the storage root. Directory creation for a
// user belongs to the slot repository's InitializeUserTree.
//
// On-disk shape under the configured top directory:
//
//	<topdir>/users/<username>/cred.json        credential record
//	<topdir>/users/<username>/<slotNum>/       slot directory (holds the tarball)
//	<topdir>/users/<username>/<slotNum>/slot.json
package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MKhiriev/submit-keeper/internal/config"
	"github.com/MKhiriev/submit-keeper/internal/validators"
)

const (
	usersDirName       = "users"
	slotFileName       = "slot.json"
	credentialFileName = "cred.json"
)

// Layout resolves store paths for a fixed top directory and slot bound.
// It carries no mutable state and is safe for concurrent use.
type Layout struct {
	topDir        string
	maxSubmitSlot int
}

// New constructs a Layout from the storage configuration.
func New(cfg config.Storage) *Layout {
	return &Layout{
		topDir:        cfg.TopDir,
		maxSubmitSlot: cfg.MaxSubmitSlot,
	}
}

// TopDir returns the configured storage root.
func (l *Layout) TopDir() string {
	return l.topDir
}

// MaxSubmitSlot returns the inclusive upper bound of slot numbers.
func (l *Layout) MaxSubmitSlot() int {
	return l.maxSubmitSlot
}

// SlotCount returns the fixed length of every user's slot table.
func (l *Layout) SlotCount() int {
	return l.maxSubmitSlot + 1
}

// CheckSlotNum validates that slotNum lies in [0, MaxSubmitSlot]. Returns
// validators.ErrInvalidSlotNumber (wrapped with the accepted range) when it
// does not.
func (l *Layout) CheckSlotNum(slotNum int) error {
	if slotNum < 0 || slotNum > l.maxSubmitSlot {
		return fmt.Errorf("%w: slot numbers must be between 0 and %d",
			validators.ErrInvalidSlotNumber, l.maxSubmitSlot)
	}
	return nil
}

// UsersDir returns the directory under which all per-user trees live.
func (l *Layout) UsersDir() string {
	return filepath.Join(l.topDir, usersDirName)
}

// UserDir returns the root directory of username's tree, validating the
// username first.
func (l *Layout) UserDir(username string) (string, error) {
	if err := validators.ValidateUsername(username); err != nil {
		return "", err
	}
	return filepath.Join(l.UsersDir(), username), nil
}

// CredentialFile returns the path of username's credential record.
func (l *Layout) CredentialFile(username string) (string, error) {
	userDir, err := l.UserDir(username)
	if err != nil {
		return "", err
	}
	return filepath.Join(userDir, credentialFileName), nil
}

// SlotDir returns the directory of one slot, validating both the username
// and the slot number.
func (l *Layout) SlotDir(username string, slotNum int) (string, error) {
	userDir, err := l.UserDir(username)
	if err != nil {
		return "", err
	}
	if err := l.CheckSlotNum(slotNum); err != nil {
		return "", err
	}
	return filepath.Join(userDir, strconv.Itoa(slotNum)), nil
}

// SlotFile returns the path of one slot's JSON state file.
func (l *Layout) SlotFile(username string, slotNum int) (string, error) {
	slotDir, err := l.SlotDir(username, slotNum)
	if err != nil {
		return "", err
	}
	return filepath.Join(slotDir, slotFileName), nil
}

// CheckTopDir verifies that the storage root is usable: the top directory
// must exist, and the users directory under it must exist or be creatable.
// An error here is the one fatal startup condition of the store — callers
// must refuse to serve when it fails.
func (l *Layout) CheckTopDir() error {
	info, err := os.Stat(l.topDir)
	if err != nil {
		return fmt.Errorf("storage top directory %s is not usable: %w", l.topDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage top directory %s is not a directory", l.topDir)
	}

	if err := os.MkdirAll(l.UsersDir(), 0o750); err != nil {
		return fmt.Errorf("cannot create users directory under %s: %w", l.topDir, err)
	}

	return nil
}
