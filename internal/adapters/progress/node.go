package progress

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sonos/internal/core/ports"
)

// NodeID is the unique identifier for the progress indicator Graft node.
const NodeID graft.ID = "adapter.progress"

func init() {
	graft.Register(graft.Node[ports.ProgressIndicator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProgressIndicator, error) {
			return New(nil), nil
		},
	})
}
