// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.loadout.dev/loadout/internal/adapters/config"
	_ "go.loadout.dev/loadout/internal/adapters/downloads"
	_ "go.loadout.dev/loadout/internal/adapters/logger"
	_ "go.loadout.dev/loadout/internal/adapters/pages"
	_ "go.loadout.dev/loadout/internal/adapters/progress"
	_ "go.loadout.dev/loadout/internal/adapters/providers"
	_ "go.loadout.dev/loadout/internal/adapters/review"
	// Register app nodes.
	_ "go.loadout.dev/loadout/internal/app"
)
