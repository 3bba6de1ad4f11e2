package domain

import (
	"path/filepath"

	"go.trai.ch/zerr"
)

// Layout is the resolved, immutable path set for a single run. Every path is
// absolute. It is computed once during path resolution and never mutated.
type Layout struct {
	Root           string
	ActivateScript string
	Manifest       string
	PipelineScript string
	ExtractorDir   string
	OutputArtifact string
}

// NewLayout resolves the config's path set into an absolute Layout anchored at
// cfg.Root. Relative paths are joined onto the root; absolute paths are kept.
func NewLayout(cfg *Config) (*Layout, error) {
	if cfg == nil {
		return nil, zerr.New("config is nil")
	}

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve root"), "root", cfg.Root)
	}

	l := &Layout{Root: root}

	for _, f := range []struct {
		name string
		raw  string
		dst  *string
	}{
		{"activate_script", cfg.ActivateScript, &l.ActivateScript},
		{"manifest", cfg.Manifest, &l.Manifest},
		{"pipeline_script", cfg.PipelineScript, &l.PipelineScript},
		{"extractor_dir", cfg.ExtractorDir, &l.ExtractorDir},
		{"output_artifact", cfg.OutputArtifact, &l.OutputArtifact},
	} {
		if f.raw == "" {
			return nil, zerr.With(zerr.New("config path is empty"), "field", f.name)
		}
		*f.dst = anchor(root, f.raw)
	}

	return l, nil
}

// Interpreter returns the virtualenv interpreter path, a sibling of the
// activation script (.venv/bin/activate -> .venv/bin/python).
func (l *Layout) Interpreter() string {
	return filepath.Join(filepath.Dir(l.ActivateScript), "python")
}

func anchor(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}
