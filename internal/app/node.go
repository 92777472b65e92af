package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gqlmemo/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/gqlmemo/internal/adapters/gql"       //nolint:depguard // Wired in app layer
	"go.trai.ch/gqlmemo/internal/adapters/hasher"    //nolint:depguard // Wired in app layer
	"go.trai.ch/gqlmemo/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/gqlmemo/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/gqlmemo/internal/core/ports"
	"go.trai.ch/gqlmemo/internal/engine/memo"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			gql.NodeID,
			memo.NodeID,
			hasher.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
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

			return &Components{App: a, Logger: log, Tracer: tracer}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	parser, err := graft.Dep[ports.Parser](ctx)
	if err != nil {
		return nil, err
	}

	caches, err := graft.Dep[ports.CacheFactory](ctx)
	if err != nil {
		return nil, err
	}

	hashers, err := graft.Dep[ports.HasherRegistry](ctx)
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

	return New(loader, parser, caches, hashers, log, tracer), nil
}
