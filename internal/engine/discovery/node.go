package discovery

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sonos/internal/adapters/cache"
	"go.trai.ch/sonos/internal/adapters/logger"
	"go.trai.ch/sonos/internal/adapters/progress"
	"go.trai.ch/sonos/internal/adapters/telemetry"
	"go.trai.ch/sonos/internal/adapters/upnp"
	"go.trai.ch/sonos/internal/core/ports"
)

// NodeID is the unique identifier for the enumerator Graft node.
const NodeID graft.ID = "engine.discovery"

func init() {
	graft.Register(graft.Node[*Enumerator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			upnp.DeviceClientNodeID,
			progress.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Enumerator, error) {
			store, err := graft.Dep[ports.SpeakerCache](ctx)
			if err != nil {
				return nil, err
			}
			client, err := graft.Dep[ports.DeviceClient](ctx)
			if err != nil {
				return nil, err
			}
			indicator, err := graft.Dep[ports.ProgressIndicator](ctx)
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
			return NewEnumerator(store, client, indicator, log, tracer), nil
		},
	})
}
