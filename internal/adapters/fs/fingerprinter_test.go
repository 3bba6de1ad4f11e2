package fs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.ledgerline.dev/preflight/internal/adapters/fs"
)

func TestFingerprinter_Deterministic(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.py", "print('a')\n")
	b := writeFile(t, dir, "b.py", "print('b')\n")

	f := fs.NewFingerprinter()

	first, err := f.Fingerprint([]string{a, b})
	require.NoError(t, err)
	second, err := f.Fingerprint([]string{b, a})
	require.NoError(t, err)

	assert.Equal(t, first, second, "fingerprint must be order independent")
	assert.Len(t, first, 16)
}

func TestFingerprinter_ChangesWithContent(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.py", "print('a')\n")

	f := fs.NewFingerprinter()
	before, err := f.Fingerprint([]string{a})
	require.NoError(t, err)

	writeFile(t, dir, "a.py", "print('changed')\n")
	after, err := f.Fingerprint([]string{a})
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}

func TestFingerprinter_ChangesWithPath(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.py", "same content\n")
	b := writeFile(t, dir, "b.py", "same content\n")

	f := fs.NewFingerprinter()
	fpA, err := f.Fingerprint([]string{a})
	require.NoError(t, err)
	fpB, err := f.Fingerprint([]string{b})
	require.NoError(t, err)

	assert.NotEqual(t, fpA, fpB, "path is part of the fingerprint")
}

func TestFingerprinter_MissingFile(t *testing.T) {
	f := fs.NewFingerprinter()
	_, err := f.Fingerprint([]string{"/nonexistent/x.py"})
	require.Error(t, err)
}

func TestFingerprinter_EmptySet(t *testing.T) {
	f := fs.NewFingerprinter()
	fp, err := f.Fingerprint(nil)
	require.NoError(t, err)
	assert.Len(t, fp, 16)
}
