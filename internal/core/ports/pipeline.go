package ports

import (
	"context"

	"go.ledgerline.dev/preflight/internal/core/domain"
)

// PipelineRunner invokes the external pipeline entry point.
//
//go:generate go run go.uber.org/mock/mockgen -source=pipeline.go -destination=mocks/mock_pipeline.go -package=mocks
type PipelineRunner interface {
	// Run executes the pipeline script with the given interpreter. The debug
	// flag is exported to the child as PIPE_DEBUG ("1" or "0").
	Run(ctx context.Context, interpreter, script string, debug bool) (domain.ProcessOutcome, error)
}
