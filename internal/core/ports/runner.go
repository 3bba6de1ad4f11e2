// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.ledgerline.dev/preflight/internal/core/domain"
)

// ProcessRunner executes child processes, blocking until they exit.
//
// The returned outcome carries the exit code and the combined output text.
// The error is non-nil only when the process could not be started or was
// interrupted; a process that runs to completion with a non-zero exit code
// is reported through the outcome, not the error.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ProcessRunner interface {
	Run(ctx context.Context, cmd domain.Command) (domain.ProcessOutcome, error)
}
