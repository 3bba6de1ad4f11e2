package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.ledgerline.dev/preflight/internal/core/ports"
)

const (
	DiscovererNodeID    graft.ID = "adapter.fs.discoverer"
	ProberNodeID        graft.ID = "adapter.fs.prober"
	VerifierNodeID      graft.ID = "adapter.fs.verifier"
	FingerprinterNodeID graft.ID = "adapter.fs.fingerprinter"
)

func init() {
	graft.Register(graft.Node[ports.Discoverer]{
		ID:        DiscovererNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Discoverer, error) {
			return NewDiscoverer(), nil
		},
	})

	graft.Register(graft.Node[ports.LockProber]{
		ID:        ProberNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.LockProber, error) {
			return NewProber(), nil
		},
	})

	graft.Register(graft.Node[ports.Verifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Verifier, error) {
			return NewVerifier(), nil
		},
	})

	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        FingerprinterNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Fingerprinter, error) {
			return NewFingerprinter(), nil
		},
	})
}
