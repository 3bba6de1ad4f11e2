package ports

import (
	"context"

	"go.ledgerline.dev/preflight/internal/core/domain"
)

// SyntaxChecker runs a syntax-only compile pass over a batch of scripts.
//
//go:generate go run go.uber.org/mock/mockgen -source=checker.go -destination=mocks/mock_checker.go -package=mocks
type SyntaxChecker interface {
	// Check compiles every script in one batch. The compiler's own report
	// (offending file and location) is preserved in the outcome's output.
	Check(ctx context.Context, interpreter string, scripts []string) (domain.ProcessOutcome, error)
}
