package python

import (
	"context"

	"github.com/grindlemire/graft"
	"go.ledgerline.dev/preflight/internal/adapters/shell"
	"go.ledgerline.dev/preflight/internal/core/ports"
)

const (
	InstallerNodeID graft.ID = "adapter.python.installer"
	CheckerNodeID   graft.ID = "adapter.python.checker"
	PipelineNodeID  graft.ID = "adapter.python.pipeline"
)

func init() {
	graft.Register(graft.Node[ports.DependencyInstaller]{
		ID:        InstallerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.DependencyInstaller, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(runner), nil
		},
	})

	graft.Register(graft.Node[ports.SyntaxChecker]{
		ID:        CheckerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.SyntaxChecker, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewChecker(runner), nil
		},
	})

	graft.Register(graft.Node[ports.PipelineRunner]{
		ID:        PipelineNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.PipelineRunner, error) {
			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewPipeline(runner), nil
		},
	})
}
