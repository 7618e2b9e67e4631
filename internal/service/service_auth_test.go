package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/submit-keeper/internal/config"
	"github.com/MKhiriev/submit-keeper/internal/logger"
	"github.com/MKhiriev/submit-keeper/internal/mock"
	"github.com/MKhiriev/submit-keeper/internal/store"
	"github.com/MKhiriev/submit-keeper/internal/validators"
	"github.com/MKhiriev/submit-keeper/models"
)

const testOldPassword = "correct horse battery"

func testPasswordConfig() config.Password {
	return config.Password{
		MinLength:      15,
		MaxLength:      40,
		ExpiryInterval: 365 * 24 * time.Hour,
	}
}

// seededCredentials wires the mock repository's Update to run the apply
// callback against a record holding a real bcrypt hash of testOldPassword,
// the way the file-backed repository would. The returned record pointer lets
// tests inspect what the callback wrote.
func seededCredentials(t *testing.T, ctrl *gomock.Controller) (*mock.MockCredentialRepository, *models.CredentialRecord) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testOldPassword), bcrypt.MinCost)
	require.NoError(t, err)

	setAt := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	record := &models.CredentialRecord{
		Username:         "alice",
		PasswordHash:     string(hash),
		PasswordSetAt:    setAt,
		PasswordChangeBy: setAt.AddDate(1, 0, 0),
	}

	credentials := mock.NewMockCredentialRepository(ctrl)
	credentials.EXPECT().
		Update(gomock.Any(), "alice", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, apply func(*models.CredentialRecord) error) error {
			return apply(record)
		}).
		AnyTimes()

	return credentials, record
}

func TestAuthService_ChangePassword(t *testing.T) {
	tests := []struct {
		name        string
		oldPassword string
		newPassword string
		wantErrs    []error
	}{
		{
			name:        "wrong old password",
			oldPassword: "not the real password",
			newPassword: "a perfectly fine new one",
			wantErrs:    []error{ErrWrongPassword},
		},
		{
			name:        "new equals old",
			oldPassword: testOldPassword,
			newPassword: testOldPassword,
			wantErrs:    []error{ErrPolicyViolation, validators.ErrPasswordSameAsOld},
		},
		{
			name:        "new contains old",
			oldPassword: testOldPassword,
			newPassword: testOldPassword + "!",
			wantErrs:    []error{ErrPolicyViolation, validators.ErrPasswordContainsOld},
		},
		{
			name:        "new is inside old",
			oldPassword: testOldPassword,
			newPassword: "horse battery",
			wantErrs:    []error{ErrPolicyViolation, validators.ErrPasswordInsideOld},
		},
		{
			name:        "new too short",
			oldPassword: testOldPassword,
			newPassword: "short",
			wantErrs:    []error{ErrPolicyViolation, validators.ErrPasswordTooShort},
		},
		{
			name:        "new too long",
			oldPassword: testOldPassword,
			newPassword: "this candidate passphrase runs well past the configured ceiling",
			wantErrs:    []error{ErrPolicyViolation, validators.ErrPasswordTooLong},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			credentials, record := seededCredentials(t, ctrl)
			auth := NewAuthService(credentials, testPasswordConfig(), logger.Nop())

			originalHash := record.PasswordHash
			err := auth.ChangePassword(context.Background(), "alice", tc.oldPassword, tc.newPassword)

			require.Error(t, err)
			for _, want := range tc.wantErrs {
				assert.ErrorIs(t, err, want)
			}
			assert.Equal(t, originalHash, record.PasswordHash, "rejected change must not alter the hash")
		})
	}
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials, record := seededCredentials(t, ctrl)

	changedAt := time.Date(2026, time.June, 1, 9, 30, 0, 0, time.UTC)
	cfg := testPasswordConfig()
	auth := NewAuthService(credentials, cfg, logger.Nop()).(*authService)
	auth.now = func() time.Time { return changedAt }

	const newPassword = "tape looped over itself"
	require.NoError(t, auth.ChangePassword(context.Background(), "alice", testOldPassword, newPassword))

	assert.True(t, auth.VerifyPassword(newPassword, record.PasswordHash), "new password must verify")
	assert.False(t, auth.VerifyPassword(testOldPassword, record.PasswordHash), "old password must no longer verify")
	assert.True(t, record.PasswordSetAt.Equal(changedAt))
	assert.True(t, record.PasswordChangeBy.Equal(changedAt.Add(cfg.ExpiryInterval)))
}

func TestAuthService_ChangePassword_EmptyArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialRepository(ctrl)
	auth := NewAuthService(credentials, testPasswordConfig(), logger.Nop())

	tests := []struct{ username, oldPassword, newPassword string }{
		{"", testOldPassword, "a perfectly fine new one"},
		{"alice", "", "a perfectly fine new one"},
		{"alice", testOldPassword, ""},
	}
	for _, tc := range tests {
		err := auth.ChangePassword(context.Background(), tc.username, tc.oldPassword, tc.newPassword)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestAuthService_Lookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialRepository(ctrl)
	auth := NewAuthService(credentials, testPasswordConfig(), logger.Nop())
	ctx := context.Background()

	want := models.CredentialRecord{Username: "alice", PasswordHash: "hash"}
	credentials.EXPECT().Lookup(ctx, "alice").Return(want, nil)

	got, err := auth.Lookup(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	credentials.EXPECT().Lookup(ctx, "nobody").Return(models.CredentialRecord{}, store.ErrUserNotFound)
	_, err = auth.Lookup(ctx, "nobody")
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	_, err = auth.Lookup(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_VerifyPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := NewAuthService(mock.NewMockCredentialRepository(ctrl), testPasswordConfig(), logger.Nop())

	hash, err := bcrypt.GenerateFromPassword([]byte(testOldPassword), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, auth.VerifyPassword(testOldPassword, string(hash)))
	assert.False(t, auth.VerifyPassword("wrong", string(hash)))
	assert.False(t, auth.VerifyPassword(testOldPassword, "not a bcrypt hash"))
}

func TestAuthService_IsAllowedToLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := NewAuthService(mock.NewMockCredentialRepository(ctrl), testPasswordConfig(), logger.Nop())

	assert.True(t, auth.IsAllowedToLogin(models.CredentialRecord{Username: "alice"}))
	assert.False(t, auth.IsAllowedToLogin(models.CredentialRecord{
		Username:       "alice",
		Disabled:       true,
		DisabledReason: "rule violation",
	}))
}

func TestAuthService_MustChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := NewAuthService(mock.NewMockCredentialRepository(ctrl), testPasswordConfig(), logger.Nop()).(*authService)

	deadline := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	record := models.CredentialRecord{Username: "alice", PasswordChangeBy: deadline}

	auth.now = func() time.Time { return deadline.Add(-time.Second) }
	assert.False(t, auth.MustChangePassword(record), "before the deadline")

	auth.now = func() time.Time { return deadline }
	assert.True(t, auth.MustChangePassword(record), "exactly at the deadline")

	auth.now = func() time.Time { return deadline.Add(time.Second) }
	assert.True(t, auth.MustChangePassword(record), "past the deadline")
}

func TestAuthService_IsProperPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := NewAuthService(mock.NewMockCredentialRepository(ctrl), testPasswordConfig(), logger.Nop())

	assert.NoError(t, auth.IsProperPassword("exactly long enough"))

	err := auth.IsProperPassword("too short")
	assert.ErrorIs(t, err, ErrPolicyViolation)
	assert.ErrorIs(t, err, validators.ErrPasswordTooShort)

	err = auth.IsProperPassword("this candidate passphrase runs well past the configured ceiling")
	assert.ErrorIs(t, err, ErrPolicyViolation)
	assert.ErrorIs(t, err, validators.ErrPasswordTooLong)
}

// errors.Is must see through the repository error wrapping so CLI callers can
// branch on the sentinel.
func TestAuthService_LookupWrappingPreservesSentinel(t *testing.T) {
	ctrl := gomock.NewController(t)
	credentials := mock.NewMockCredentialRepository(ctrl)
	auth := NewAuthService(credentials, testPasswordConfig(), logger.Nop())
	ctx := context.Background()

	wrapped := errors.Join(store.ErrCorruptRecord, errors.New("credential record for alice"))
	credentials.EXPECT().Lookup(ctx, "alice").Return(models.CredentialRecord{}, wrapped)

	_, err := auth.Lookup(ctx, "alice")
	assert.ErrorIs(t, err, store.ErrCorruptRecord)
}
