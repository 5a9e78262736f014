package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sonos/internal/adapters/cache"
	"go.trai.ch/sonos/internal/adapters/logger"
	"go.trai.ch/sonos/internal/adapters/telemetry"
	"go.trai.ch/sonos/internal/adapters/upnp"
	"go.trai.ch/sonos/internal/core/ports"
	"go.trai.ch/sonos/internal/engine/discovery"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the Components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds everything main needs to run a command.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			discovery.NodeID,
			upnp.DeviceClientNodeID,
			upnp.TransportNodeID,
			cache.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			enumerator, err := graft.Dep[*discovery.Enumerator](ctx)
			if err != nil {
				return nil, err
			}
			client, err := graft.Dep[ports.DeviceClient](ctx)
			if err != nil {
				return nil, err
			}
			transport, err := graft.Dep[ports.Transport](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.SpeakerCache](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(enumerator, client, transport, store, log, tracer), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}
