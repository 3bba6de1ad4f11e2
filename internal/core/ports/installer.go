package ports

import (
	"context"

	"go.ledgerline.dev/preflight/internal/core/domain"
)

// DependencyInstaller provisions the declared dependency manifest into the
// activated environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type DependencyInstaller interface {
	// Install upgrades the package manager and installs the manifest using
	// the given interpreter. A non-zero outcome means the manager failed;
	// its output is preserved verbatim in the outcome.
	Install(ctx context.Context, interpreter, manifest string) (domain.ProcessOutcome, error)
}
