package upnp

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sonos/internal/adapters/config"
	"go.trai.ch/sonos/internal/adapters/logger"
	"go.trai.ch/sonos/internal/adapters/mdns"
	"go.trai.ch/sonos/internal/core/domain"
	"go.trai.ch/sonos/internal/core/ports"
)

const (
	// ScannerNodeID is the unique identifier for the network scanner Graft node.
	ScannerNodeID graft.ID = "adapter.scanner"
	// NodeID is the unique identifier for the UPnP client Graft node.
	NodeID graft.ID = "adapter.upnp"
	// DeviceClientNodeID exposes the client as ports.DeviceClient.
	DeviceClientNodeID graft.ID = "adapter.device_client"
	// TransportNodeID exposes the client as ports.Transport.
	TransportNodeID graft.ID = "adapter.transport"
)

func init() {
	graft.Register(graft.Node[ports.Scanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Scanner, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			if cfg.Method == domain.DiscoveryMDNS {
				return mdns.NewScanner(cfg.DiscoveryTimeout), nil
			}
			return NewSSDPScanner(cfg.DiscoveryTimeout), nil
		},
	})

	graft.Register(graft.Node[*Client]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, ScannerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Client, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			scanner, err := graft.Dep[ports.Scanner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(cfg, scanner, log), nil
		},
	})

	graft.Register(graft.Node[ports.DeviceClient]{
		ID:        DeviceClientNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.DeviceClient, error) {
			c, err := graft.Dep[*Client](ctx)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	})

	graft.Register(graft.Node[ports.Transport]{
		ID:        TransportNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.Transport, error) {
			c, err := graft.Dep[*Client](ctx)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	})
}
