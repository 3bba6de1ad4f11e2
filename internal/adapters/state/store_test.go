package state_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.ledgerline.dev/preflight/internal/adapters/state"
	"go.ledgerline.dev/preflight/internal/core/domain"
	"go.ledgerline.dev/preflight/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	return mocks.NewMockLogger(gomock.NewController(t))
}

func TestStore_EmptyStore(t *testing.T) {
	s, err := state.NewStore(filepath.Join(t.TempDir(), "preflight_state.json"), quietLogger(t))
	require.NoError(t, err)

	last, err := s.Last()
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestStore_PutAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preflight_state.json")

	s, err := state.NewStore(path, quietLogger(t))
	require.NoError(t, err)

	record := domain.RunRecord{
		Timestamp:            time.Now().Truncate(time.Second),
		ExtractorFingerprint: "deadbeefdeadbeef",
		State:                domain.StateOutputVerified,
		Success:              true,
	}
	require.NoError(t, s.Put(record))

	// A fresh store instance must read the persisted record back.
	reloaded, err := state.NewStore(path, quietLogger(t))
	require.NoError(t, err)
	last, err := reloaded.Last()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "deadbeefdeadbeef", last.ExtractorFingerprint)
	assert.Equal(t, domain.StateOutputVerified, last.State)
	assert.True(t, last.Success)
}

func TestStore_FailedRunRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preflight_state.json")
	s, err := state.NewStore(path, quietLogger(t))
	require.NoError(t, err)

	require.NoError(t, s.Put(domain.RunRecord{
		Timestamp: time.Now(),
		State:     domain.StateDiscovered,
		Success:   false,
		Error:     "output artifact is locked",
	}))

	last, err := s.Last()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.False(t, last.Success)
	assert.Equal(t, "output artifact is locked", last.Error)
}

// The record is a drift-warning cache; a mangled file must not keep the tool
// from starting. The store warns, begins empty, and the next Put heals it.
func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preflight_state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Warn(gomock.Any()).Times(1)

	s, err := state.NewStore(path, log)
	require.NoError(t, err)

	last, err := s.Last()
	require.NoError(t, err)
	assert.Nil(t, last)

	require.NoError(t, s.Put(domain.RunRecord{
		Timestamp: time.Now(),
		State:     domain.StateOutputVerified,
		Success:   true,
	}))

	reloaded, err := state.NewStore(path, quietLogger(t))
	require.NoError(t, err)
	last, err = reloaded.Last()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.True(t, last.Success)
}
