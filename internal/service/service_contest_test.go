package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/submit-keeper/internal/config"
)

func TestContestService_IsOpen(t *testing.T) {
	openAt := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	closeAt := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	contest := NewContestService(config.Contest{OpenAt: openAt, CloseAt: closeAt})

	tests := []struct {
		name string
		now  time.Time
		open bool
	}{
		{"before open", openAt.Add(-time.Second), false},
		{"exactly at open", openAt, true},
		{"mid window", openAt.AddDate(0, 1, 0), true},
		{"just before close", closeAt.Add(-time.Second), true},
		{"exactly at close", closeAt, false},
		{"after close", closeAt.Add(time.Second), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, open := contest.IsOpen(tc.now)
			assert.Equal(t, tc.open, open)
			if tc.open {
				assert.True(t, got.Equal(closeAt), "open window must report the close time")
			} else {
				assert.True(t, got.IsZero(), "closed window must report the zero time")
			}
		})
	}
}

func TestContestService_UnsetWindowIsClosed(t *testing.T) {
	now := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		cfg  config.Contest
	}{
		{"both unset", config.Contest{}},
		{"open unset", config.Contest{CloseAt: now.AddDate(0, 1, 0)}},
		{"close unset", config.Contest{OpenAt: now.AddDate(0, -1, 0)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			closeAt, open := NewContestService(tc.cfg).IsOpen(now)
			assert.False(t, open)
			assert.True(t, closeAt.IsZero())
		})
	}
}
