package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.ledgerline.dev/preflight/internal/app"
	_ "go.ledgerline.dev/preflight/internal/wiring"
)

// TestComponentsResolve exercises the full Graft graph: every adapter node
// must construct and the Components bundle must come out fully populated.
func TestComponentsResolve(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
	require.NotNil(t, components.Tracer)
	require.NotNil(t, components.ConfigLoader)
}
