// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sonos/internal/adapters/cache"
	_ "go.trai.ch/sonos/internal/adapters/config"
	_ "go.trai.ch/sonos/internal/adapters/logger"
	_ "go.trai.ch/sonos/internal/adapters/progress"
	_ "go.trai.ch/sonos/internal/adapters/telemetry"
	_ "go.trai.ch/sonos/internal/adapters/upnp"
	// Register app and engine nodes.
	_ "go.trai.ch/sonos/internal/app"
	_ "go.trai.ch/sonos/internal/engine/discovery"
)
