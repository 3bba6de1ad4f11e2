package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.ledgerline.dev/preflight/internal/adapters/config"
)

func TestLoad_Success(t *testing.T) {
	content := `
paths:
  activate: "venv/bin/activate"
  manifest: "deps/requirements.txt"
  pipeline: "merge_finances_pipeline.py"
  extractors: "extractors"
  output: "out/Finances.xlsx"
debug: true
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "preflight.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	loader := &config.FileConfigLoader{}
	cfg, err := loader.Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, tmpDir, cfg.Root)
	assert.Equal(t, "venv/bin/activate", cfg.ActivateScript)
	assert.Equal(t, "deps/requirements.txt", cfg.Manifest)
	assert.Equal(t, "merge_finances_pipeline.py", cfg.PipelineScript)
	assert.Equal(t, "extractors", cfg.ExtractorDir)
	assert.Equal(t, "out/Finances.xlsx", cfg.OutputArtifact)
	assert.True(t, cfg.Debug)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	content := `
paths:
  output: "Ledger.xlsx"
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "preflight.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	loader := &config.FileConfigLoader{}
	cfg, err := loader.Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "Ledger.xlsx", cfg.OutputArtifact)
	assert.Equal(t, ".venv/bin/activate", cfg.ActivateScript)
	assert.Equal(t, "requirements.txt", cfg.Manifest)
	assert.Equal(t, "finances_pipeline.py", cfg.PipelineScript)
	assert.Equal(t, "scripts/image-scripts", cfg.ExtractorDir)
	assert.False(t, cfg.Debug)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	loader := &config.FileConfigLoader{}
	cfg, err := loader.Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, "finances_pipeline.py", cfg.PipelineScript)
}

func TestLoad_MalformedYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "preflight.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("paths: [not: a: map"), 0o600))

	loader := &config.FileConfigLoader{}
	_, err := loader.Load(configPath)
	require.Error(t, err)
}
