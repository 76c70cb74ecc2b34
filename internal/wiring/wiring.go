// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/classdex/internal/adapters/archive"
	_ "go.trai.ch/classdex/internal/adapters/cache"
	_ "go.trai.ch/classdex/internal/adapters/classfile"
	_ "go.trai.ch/classdex/internal/adapters/config"
	_ "go.trai.ch/classdex/internal/adapters/fs"
	_ "go.trai.ch/classdex/internal/adapters/logger"
	_ "go.trai.ch/classdex/internal/adapters/telemetry"
	_ "go.trai.ch/classdex/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/classdex/internal/app"
	_ "go.trai.ch/classdex/internal/engine/indexer"
)
