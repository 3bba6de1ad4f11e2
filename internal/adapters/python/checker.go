package python

import (
	"context"

	"go.ledgerline.dev/preflight/internal/core/domain"
	"go.ledgerline.dev/preflight/internal/core/ports"
	"go.trai.ch/zerr"
)

// Checker implements ports.SyntaxChecker using py_compile.
type Checker struct {
	runner ports.ProcessRunner
}

// NewChecker creates a new Checker.
func NewChecker(runner ports.ProcessRunner) *Checker {
	return &Checker{runner: runner}
}

// Check compiles every script in a single batch. py_compile exits zero iff
// every file parses and prints each offending file with its location; that
// report travels back verbatim in the outcome's output.
func (c *Checker) Check(ctx context.Context, interpreter string, scripts []string) (domain.ProcessOutcome, error) {
	if len(scripts) == 0 {
		return domain.ProcessOutcome{}, zerr.New("no scripts to check")
	}

	args := append([]string{"-m", "py_compile"}, scripts...)
	return c.runner.Run(ctx, domain.Command{
		Path: interpreter,
		Args: args,
	})
}
