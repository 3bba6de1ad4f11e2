package state

import (
	"context"

	"github.com/grindlemire/graft"
	"go.ledgerline.dev/preflight/internal/adapters/logger"
	"go.ledgerline.dev/preflight/internal/core/ports"
)

const NodeID graft.ID = "adapter.state"

// StateFilename is where the last run summary lives, next to the config.
const StateFilename = "preflight_state.json"

func init() {
	graft.Register(graft.Node[ports.RunRecordStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RunRecordStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(StateFilename, log)
		},
	})
}
