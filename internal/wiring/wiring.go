// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sheet/internal/adapters/config"
	_ "go.trai.ch/sheet/internal/adapters/detector"
	_ "go.trai.ch/sheet/internal/adapters/esbuild"
	_ "go.trai.ch/sheet/internal/adapters/fs"
	_ "go.trai.ch/sheet/internal/adapters/logger"
	_ "go.trai.ch/sheet/internal/adapters/telemetry"
	_ "go.trai.ch/sheet/internal/adapters/treesitter"
	_ "go.trai.ch/sheet/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/sheet/internal/app"
)
