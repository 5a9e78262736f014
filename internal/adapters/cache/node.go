package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sonos/internal/adapters/config"
	"go.trai.ch/sonos/internal/core/domain"
	"go.trai.ch/sonos/internal/core/ports"
)

// NodeID is the unique identifier for the speaker cache Graft node.
const NodeID graft.ID = "adapter.speaker_cache"

func init() {
	graft.Register(graft.Node[ports.SpeakerCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.SpeakerCache, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.CachePath), nil
		},
	})
}
