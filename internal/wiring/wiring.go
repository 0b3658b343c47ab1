// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/seek/internal/adapters/cache"
	_ "go.trai.ch/seek/internal/adapters/config"
	_ "go.trai.ch/seek/internal/adapters/launcher"
	_ "go.trai.ch/seek/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/seek/internal/app"
)
