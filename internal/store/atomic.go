// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeFileAtomic replaces the file at path with data using the
// write-temp-then-rename discipline: the new contents are written to a
// temporary file in the destination directory, synced to disk, and renamed
// over the canonical path as the last step. A reader never observes a
// partially written record, and a crash mid-write leaves the previous
// version intact.
//
// The temporary file must live in the same directory as path so the final
// rename stays within one filesystem.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file in %s: %w", ErrIOFailure, dir, err)
	}
	tmpName := tmp.Name()

	cleanup := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(fmt.Errorf("%w: writing %s: %w", ErrIOFailure, tmpName, err))
	}
	if err := tmp.Chmod(perm); err != nil {
		return cleanup(fmt.Errorf("%w: chmod %s: %w", ErrIOFailure, tmpName, err))
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(fmt.Errorf("%w: syncing %s: %w", ErrIOFailure, tmpName, err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing %s: %w", ErrIOFailure, tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming %s over %s: %w", ErrIOFailure, tmpName, path, err)
	}

	return nil
}
