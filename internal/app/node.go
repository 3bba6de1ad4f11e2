package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.ledgerline.dev/preflight/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.ledgerline.dev/preflight/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.ledgerline.dev/preflight/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.ledgerline.dev/preflight/internal/adapters/python"    //nolint:depguard // Wired in app layer
	"go.ledgerline.dev/preflight/internal/adapters/state"     //nolint:depguard // Wired in app layer
	"go.ledgerline.dev/preflight/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.ledgerline.dev/preflight/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles everything the CLI entry point needs.
type Components struct {
	App          *App
	Logger       ports.Logger
	Tracer       ports.Tracer
	ConfigLoader ports.ConfigLoader
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			telemetry.NodeID,
			fs.DiscovererNodeID,
			fs.ProberNodeID,
			fs.VerifierNodeID,
			fs.FingerprinterNodeID,
			python.InstallerNodeID,
			python.CheckerNodeID,
			python.PipelineNodeID,
			state.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	discoverer, err := graft.Dep[ports.Discoverer](ctx)
	if err != nil {
		return nil, err
	}

	prober, err := graft.Dep[ports.LockProber](ctx)
	if err != nil {
		return nil, err
	}

	installer, err := graft.Dep[ports.DependencyInstaller](ctx)
	if err != nil {
		return nil, err
	}

	checker, err := graft.Dep[ports.SyntaxChecker](ctx)
	if err != nil {
		return nil, err
	}

	pipeline, err := graft.Dep[ports.PipelineRunner](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.Verifier](ctx)
	if err != nil {
		return nil, err
	}

	fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.RunRecordStore](ctx)
	if err != nil {
		return nil, err
	}

	return New(log, tracer, discoverer, prober, installer, checker, pipeline, verifier, fingerprinter, store), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          application,
		Logger:       log,
		Tracer:       tracer,
		ConfigLoader: loader,
	}, nil
}
