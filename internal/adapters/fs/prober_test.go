package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.ledgerline.dev/preflight/internal/adapters/fs"
	"golang.org/x/sys/unix"
)

func TestProber_MissingFileProbesClean(t *testing.T) {
	p := fs.NewProber()
	locked, err := p.Probe(filepath.Join(t.TempDir(), "Finances.xlsx"))
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestProber_UnheldFileProbesClean(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Finances.xlsx", "data")

	p := fs.NewProber()
	locked, err := p.Probe(path)
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestProber_HeldFileReportsLocked(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Finances.xlsx", "data")

	// Hold an exclusive flock on a separate descriptor. flock locks attach
	// to the open file description, so the probe's own open conflicts even
	// within one process.
	holder, err := os.OpenFile(path, os.O_RDWR, 0)
	require.NoError(t, err)
	defer holder.Close()
	require.NoError(t, unix.Flock(int(holder.Fd()), unix.LOCK_EX|unix.LOCK_NB))

	p := fs.NewProber()
	locked, err := p.Probe(path)
	require.NoError(t, err)
	assert.True(t, locked)
}

func TestProber_ReleasesItsOwnLock(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Finances.xlsx", "data")

	p := fs.NewProber()
	for range 3 {
		locked, err := p.Probe(path)
		require.NoError(t, err)
		assert.False(t, locked)
	}
}
