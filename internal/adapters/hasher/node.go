package hasher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gqlmemo/internal/core/ports"
)

// NodeID is the unique identifier for the hasher registry Graft node.
const NodeID graft.ID = "adapter.hasher"

func init() {
	graft.Register(graft.Node[ports.HasherRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HasherRegistry, error) {
			return NewRegistry(), nil
		},
	})
}
