package config

// Preflightfile represents the structure of the preflight.yaml configuration
// file. Every field is optional; omitted paths fall back to the conventional
// pipeline layout.
type Preflightfile struct {
	Paths PathsDTO `yaml:"paths"`
	Debug bool     `yaml:"debug"`
}

// PathsDTO holds the path set, relative to the config file's directory
// unless absolute.
type PathsDTO struct {
	Activate   string `yaml:"activate"`
	Manifest   string `yaml:"manifest"`
	Pipeline   string `yaml:"pipeline"`
	Extractors string `yaml:"extractors"`
	Output     string `yaml:"output"`
}
