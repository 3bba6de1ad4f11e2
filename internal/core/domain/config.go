package domain

// Config holds the raw run configuration as loaded from preflight.yaml.
// Paths may be relative; they are anchored at Root when the Layout is built.
type Config struct {
	// Root is the directory all relative paths are resolved against,
	// normally the directory containing the config file.
	Root string

	// ActivateScript is the virtualenv activation script. Its parent
	// directory is where the interpreter is looked up.
	ActivateScript string

	// Manifest is the dependency manifest (requirements file).
	Manifest string

	// PipelineScript is the pipeline entry point.
	PipelineScript string

	// ExtractorDir is the flat directory holding extractor scripts.
	ExtractorDir string

	// OutputArtifact is the spreadsheet the pipeline is expected to write.
	OutputArtifact string

	// Debug is exported to the pipeline process as PIPE_DEBUG. It is an
	// explicit config value, never read from preflight's own environment.
	Debug bool
}

// DefaultConfig returns the configuration matching the conventional pipeline
// layout, anchored at root.
func DefaultConfig(root string) *Config {
	return &Config{
		Root:           root,
		ActivateScript: ".venv/bin/activate",
		Manifest:       "requirements.txt",
		PipelineScript: "finances_pipeline.py",
		ExtractorDir:   "scripts/image-scripts",
		OutputArtifact: "Finances.xlsx",
	}
}
