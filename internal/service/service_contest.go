// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/submit-keeper/internal/config"
)

// contestService is the concrete implementation of ContestService: a pure
// function of the configured open/close timestamps and the clock. It holds
// no mutable state.
type contestService struct {
	openAt  time.Time
	closeAt time.Time
}

// NewContestService constructs the contest window oracle from the global
// contest configuration.
func NewContestService(cfg config.Contest) ContestService {
	return &contestService{
		openAt:  cfg.OpenAt,
		closeAt: cfg.CloseAt,
	}
}

// IsOpen implements [ContestService]. The window is open from the open
// timestamp inclusive to the close timestamp exclusive. When open, the
// close time is returned for display; when closed, the zero time and false.
// An unset window (zero timestamps) is closed.
func (c *contestService) IsOpen(now time.Time) (time.Time, bool) {
	if c.openAt.IsZero() || c.closeAt.IsZero() {
		return time.Time{}, false
	}
	if now.Before(c.openAt) || !now.Before(c.closeAt) {
		return time.Time{}, false
	}
	return c.closeAt, true
}
