package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.ledgerline.dev/preflight/internal/adapters/fs"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDiscoverer_SortedScripts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "note_extractor.py", "x = 1\n")
	writeFile(t, dir, "amount_extractor.py", "x = 2\n")
	writeFile(t, dir, "date_extractor.py", "x = 3\n")
	writeFile(t, dir, "README.md", "not a script\n")

	d := fs.NewDiscoverer()
	scripts, err := d.Discover(dir)
	require.NoError(t, err)

	require.Len(t, scripts, 3)
	assert.Equal(t, filepath.Join(dir, "amount_extractor.py"), scripts[0])
	assert.Equal(t, filepath.Join(dir, "date_extractor.py"), scripts[1])
	assert.Equal(t, filepath.Join(dir, "note_extractor.py"), scripts[2])
}

func TestDiscoverer_EmptyDir(t *testing.T) {
	d := fs.NewDiscoverer()
	scripts, err := d.Discover(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, scripts)
}

func TestDiscoverer_IgnoresSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "amount_extractor.py", "x = 1\n")
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(sub, 0o750))
	writeFile(t, sub, "hidden_extractor.py", "x = 2\n")

	d := fs.NewDiscoverer()
	scripts, err := d.Discover(dir)
	require.NoError(t, err)
	require.Len(t, scripts, 1)
}

func TestVerifier_Exists(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Finances.xlsx", "")

	v := fs.NewVerifier()
	ok, err := v.Verify(path)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifier_Missing(t *testing.T) {
	v := fs.NewVerifier()
	ok, err := v.Verify(filepath.Join(t.TempDir(), "Finances.xlsx"))
	require.NoError(t, err)
	assert.False(t, ok)
}
