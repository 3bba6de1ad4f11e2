// Package config provides the configuration loader for preflight.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.ledgerline.dev/preflight/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct{}

// Load reads the configuration file at path. The config anchors all relative
// paths at its own directory, so runs behave the same regardless of the
// caller's working directory. A missing file yields the default layout
// anchored at the current directory.
func (l *FileConfigLoader) Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultConfig("."), nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Preflightfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve config path"), "path", path)
	}

	cfg := domain.DefaultConfig(filepath.Dir(abs))
	cfg.Debug = file.Debug

	if file.Paths.Activate != "" {
		cfg.ActivateScript = file.Paths.Activate
	}
	if file.Paths.Manifest != "" {
		cfg.Manifest = file.Paths.Manifest
	}
	if file.Paths.Pipeline != "" {
		cfg.PipelineScript = file.Paths.Pipeline
	}
	if file.Paths.Extractors != "" {
		cfg.ExtractorDir = file.Paths.Extractors
	}
	if file.Paths.Output != "" {
		cfg.OutputArtifact = file.Paths.Output
	}

	return cfg, nil
}
