package ports

import "go.ledgerline.dev/preflight/internal/core/domain"

// ConfigLoader loads the run configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the config file at path. A missing file yields the default
	// configuration anchored at the current directory.
	Load(path string) (*domain.Config, error)
}
