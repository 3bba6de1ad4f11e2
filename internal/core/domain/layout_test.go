package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.ledgerline.dev/preflight/internal/core/domain"
)

func TestNewLayout_ResolvesRelativePaths(t *testing.T) {
	root := t.TempDir()
	cfg := domain.DefaultConfig(root)

	l, err := domain.NewLayout(cfg)
	require.NoError(t, err)

	assert.Equal(t, root, l.Root)
	assert.Equal(t, filepath.Join(root, ".venv/bin/activate"), l.ActivateScript)
	assert.Equal(t, filepath.Join(root, "requirements.txt"), l.Manifest)
	assert.Equal(t, filepath.Join(root, "finances_pipeline.py"), l.PipelineScript)
	assert.Equal(t, filepath.Join(root, "scripts/image-scripts"), l.ExtractorDir)
	assert.Equal(t, filepath.Join(root, "Finances.xlsx"), l.OutputArtifact)

	// Every resolved path must be absolute.
	for _, p := range []string{l.ActivateScript, l.Manifest, l.PipelineScript, l.ExtractorDir, l.OutputArtifact} {
		assert.True(t, filepath.IsAbs(p), "expected absolute path, got %s", p)
	}
}

func TestNewLayout_KeepsAbsolutePaths(t *testing.T) {
	root := t.TempDir()
	cfg := domain.DefaultConfig(root)
	cfg.OutputArtifact = "/srv/finance/Finances.xlsx"

	l, err := domain.NewLayout(cfg)
	require.NoError(t, err)

	assert.Equal(t, "/srv/finance/Finances.xlsx", l.OutputArtifact)
}

func TestNewLayout_EmptyField(t *testing.T) {
	cfg := domain.DefaultConfig(t.TempDir())
	cfg.PipelineScript = ""

	_, err := domain.NewLayout(cfg)
	require.Error(t, err)
}

func TestNewLayout_NilConfig(t *testing.T) {
	_, err := domain.NewLayout(nil)
	require.Error(t, err)
}

func TestLayout_Interpreter(t *testing.T) {
	root := t.TempDir()
	l, err := domain.NewLayout(domain.DefaultConfig(root))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, ".venv/bin/python"), l.Interpreter())
}
