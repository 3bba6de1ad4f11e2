// Package python provides adapters that drive the pipeline's Python
// toolchain: pip provisioning, the py_compile batch check, and the pipeline
// invocation itself.
package python

import (
	"context"

	"go.ledgerline.dev/preflight/internal/core/domain"
	"go.ledgerline.dev/preflight/internal/core/ports"
)

// Installer implements ports.DependencyInstaller using pip.
type Installer struct {
	runner ports.ProcessRunner
}

// NewInstaller creates a new Installer.
func NewInstaller(runner ports.ProcessRunner) *Installer {
	return &Installer{runner: runner}
}

// Install upgrades pip, then installs the manifest. Both invocations go
// through the interpreter's own pip module so the virtualenv's site-packages
// is the install target. The first non-zero outcome is returned as-is; the
// caller maps it to the install-failure gate error.
func (i *Installer) Install(ctx context.Context, interpreter, manifest string) (domain.ProcessOutcome, error) {
	outcome, err := i.runner.Run(ctx, domain.Command{
		Path: interpreter,
		Args: []string{"-m", "pip", "install", "--upgrade", "pip"},
	})
	if err != nil || !outcome.Ok() {
		return outcome, err
	}

	return i.runner.Run(ctx, domain.Command{
		Path: interpreter,
		Args: []string{"-m", "pip", "install", "-r", manifest},
	})
}
