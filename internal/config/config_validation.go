// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Filesystem reachability of the top directory is deliberately not checked
// here; that is the layout package's startup check, so that administrative
// tools can repoint the top directory after parsing and before any store
// operation executes.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.TopDir == "" {
		return fmt.Errorf("%w: storage top directory is required", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.MaxSubmitSlot < 0 {
		return fmt.Errorf("%w: max submit slot must not be negative", ErrInvalidStorageConfigs)
	}

	if cfg.Password.MinLength < 1 || cfg.Password.MaxLength < cfg.Password.MinLength {
		return fmt.Errorf("%w: password length bounds %d..%d", ErrInvalidPasswordConfigs,
			cfg.Password.MinLength, cfg.Password.MaxLength)
	}

	if cfg.Password.ExpiryInterval <= 0 {
		return fmt.Errorf("%w: password expiry interval must be positive", ErrInvalidPasswordConfigs)
	}

	if !cfg.Contest.CloseAt.IsZero() && cfg.Contest.CloseAt.Before(cfg.Contest.OpenAt) {
		return fmt.Errorf("%w: contest closes before it opens", ErrInvalidContestConfigs)
	}

	return nil
}
