package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{"simple", "carol", nil},
		{"alphanumeric", "user42", nil},
		{"inner punctuation", "a.b_c+d-e", nil},
		{"single char", "x", nil},
		{"empty", "", ErrInvalidUsername},
		{"leading dot", ".hidden", ErrInvalidUsername},
		{"leading dash", "-flag", ErrInvalidUsername},
		{"path separator", "a/b", ErrInvalidUsername},
		{"parent traversal", "..", ErrInvalidUsername},
		{"space", "two words", ErrInvalidUsername},
		{"over-length", strings.Repeat("a", MaxUsernameLength+1), ErrInvalidUsername},
		{"exactly max length", strings.Repeat("a", MaxUsernameLength), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateUsername(tc.username)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidateUploadFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		username string
		slotNum  int
		ok       bool
	}{
		{"valid", "submit.carol-3.1732000000.txz", "carol", 3, true},
		{"valid long timestamp", "submit.alice-0.17320000001.txz", "alice", 0, true},
		{"timestamp too short", "submit.alice-1.99.txz", "alice", 1, false},
		{"timestamp nine digits", "submit.alice-1.170000000.txz", "alice", 1, false},
		{"timestamp leading zero", "submit.alice-1.0700000000.txz", "alice", 1, false},
		{"other user's file", "submit.bob-2.1700000000.txz", "alice", 2, false},
		{"other slot's file", "submit.alice-3.1700000000.txz", "alice", 2, false},
		{"wrong extension", "submit.alice-2.1700000000.tgz", "alice", 2, false},
		{"missing prefix", "alice-2.1700000000.txz", "alice", 2, false},
		{"trailing garbage", "submit.alice-2.1700000000.txz.bak", "alice", 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateUploadFilename(tc.filename, tc.username, tc.slotNum)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidUploadFilename)
			}
		})
	}
}

func TestValidateUploadFilename_UsernameIsQuoted(t *testing.T) {
	// a dot in the username must match literally, not act as a regexp wildcard
	err := ValidateUploadFilename("submit.aXb-1.1700000000.txz", "a.b", 1)
	require.ErrorIs(t, err, ErrInvalidUploadFilename)

	err = ValidateUploadFilename("submit.a.b-1.1700000000.txz", "a.b", 1)
	require.NoError(t, err)
}

func TestValidatePasswordLength(t *testing.T) {
	assert.ErrorIs(t, ValidatePasswordLength("short", 15, 40), ErrPasswordTooShort)
	assert.ErrorIs(t, ValidatePasswordLength(strings.Repeat("p", 41), 15, 40), ErrPasswordTooLong)
	assert.NoError(t, ValidatePasswordLength(strings.Repeat("p", 15), 15, 40))
	assert.NoError(t, ValidatePasswordLength(strings.Repeat("p", 40), 15, 40))
}

func TestValidatePasswordChange(t *testing.T) {
	tests := []struct {
		name    string
		old     string
		new     string
		wantErr error
	}{
		{"same password", "correct horse battery", "correct horse battery", ErrPasswordSameAsOld},
		{"new contains old", "horse battery", "correct horse battery", ErrPasswordContainsOld},
		{"old contains new", "correct horse battery", "horse battery", ErrPasswordInsideOld},
		{"sufficiently different", "correct horse battery", "staple engine dynamo", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePasswordChange(tc.old, tc.new)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
