package python

import (
	"context"
	"path/filepath"

	"go.ledgerline.dev/preflight/internal/core/domain"
	"go.ledgerline.dev/preflight/internal/core/ports"
)

// Pipeline implements ports.PipelineRunner.
type Pipeline struct {
	runner ports.ProcessRunner
}

// NewPipeline creates a new Pipeline.
func NewPipeline(runner ports.ProcessRunner) *Pipeline {
	return &Pipeline{runner: runner}
}

// Run invokes the pipeline script with no arguments, from the script's own
// directory so its relative data paths resolve. The debug flag is exported
// as PIPE_DEBUG; it is always set explicitly, never inherited.
func (p *Pipeline) Run(ctx context.Context, interpreter, script string, debug bool) (domain.ProcessOutcome, error) {
	flag := "0"
	if debug {
		flag = "1"
	}

	return p.runner.Run(ctx, domain.Command{
		Path: interpreter,
		Args: []string{script},
		Dir:  filepath.Dir(script),
		Env:  []string{"PIPE_DEBUG=" + flag},
	})
}
