package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/submit-keeper/internal/config"
	"github.com/MKhiriev/submit-keeper/internal/validators"
)

func newTestLayout(topDir string) *Layout {
	return New(config.Storage{TopDir: topDir, MaxSubmitSlot: 9})
}

func TestLayout_Paths(t *testing.T) {
	l := newTestLayout("/srv/submit")

	userDir, err := l.UserDir("carol")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/srv/submit", "users", "carol"), userDir)

	credFile, err := l.CredentialFile("carol")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(userDir, "cred.json"), credFile)

	slotDir, err := l.SlotDir("carol", 3)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(userDir, "3"), slotDir)

	slotFile, err := l.SlotFile("carol", 3)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(slotDir, "slot.json"), slotFile)
}

func TestLayout_InvalidUsername(t *testing.T) {
	l := newTestLayout("/srv/submit")

	for _, username := range []string{"", "..", "a/b", "-dash", ".dot"} {
		_, err := l.UserDir(username)
		assert.ErrorIs(t, err, validators.ErrInvalidUsername, "username %q", username)

		_, err = l.SlotFile(username, 0)
		assert.ErrorIs(t, err, validators.ErrInvalidUsername, "username %q", username)
	}
}

func TestLayout_SlotNumberBounds(t *testing.T) {
	l := newTestLayout("/srv/submit")

	assert.NoError(t, l.CheckSlotNum(0))
	assert.NoError(t, l.CheckSlotNum(9))
	assert.ErrorIs(t, l.CheckSlotNum(-1), validators.ErrInvalidSlotNumber)
	assert.ErrorIs(t, l.CheckSlotNum(10), validators.ErrInvalidSlotNumber)

	_, err := l.SlotDir("carol", 10)
	assert.ErrorIs(t, err, validators.ErrInvalidSlotNumber)

	assert.Equal(t, 10, l.SlotCount())
}

func TestLayout_CheckTopDir(t *testing.T) {
	topDir := t.TempDir()
	l := newTestLayout(topDir)

	require.NoError(t, l.CheckTopDir())

	// the users directory is created by the check
	info, err := os.Stat(filepath.Join(topDir, "users"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// a second run against the existing tree still succeeds
	require.NoError(t, l.CheckTopDir())
}

func TestLayout_CheckTopDir_Missing(t *testing.T) {
	l := newTestLayout(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, l.CheckTopDir())
}

func TestLayout_CheckTopDir_NotADirectory(t *testing.T) {
	topDir := filepath.Join(t.TempDir(), "plain-file")
	require.NoError(t, os.WriteFile(topDir, []byte("x"), 0o600))

	l := newTestLayout(topDir)
	assert.Error(t, l.CheckTopDir())
}
