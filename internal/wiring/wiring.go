// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.ledgerline.dev/preflight/internal/adapters/config"
	_ "go.ledgerline.dev/preflight/internal/adapters/fs"
	_ "go.ledgerline.dev/preflight/internal/adapters/logger"
	_ "go.ledgerline.dev/preflight/internal/adapters/python"
	_ "go.ledgerline.dev/preflight/internal/adapters/shell"
	_ "go.ledgerline.dev/preflight/internal/adapters/state"
	_ "go.ledgerline.dev/preflight/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.ledgerline.dev/preflight/internal/app"
)
