package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.ledgerline.dev/preflight/internal/core/ports"
)

const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			return &FileConfigLoader{}, nil
		},
	})
}
