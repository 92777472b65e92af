package memo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gqlmemo/internal/adapters/gql" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/gqlmemo/internal/core/ports"
)

// NodeID is the unique identifier for the cache factory Graft node.
const NodeID graft.ID = "engine.memo"

func init() {
	graft.Register(graft.Node[ports.CacheFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{gql.NodeID},
		Run: func(ctx context.Context) (ports.CacheFactory, error) {
			parser, err := graft.Dep[ports.Parser](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(parser), nil
		},
	})
}
