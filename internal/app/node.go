package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/classdex/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/classdex/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/classdex/internal/core/ports"
	"go.trai.ch/classdex/internal/engine/indexer"
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
			indexer.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.DescriptorLoader](ctx)
			if err != nil {
				return nil, err
			}

			creator, err := graft.Dep[*indexer.Creator](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, creator, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(application, log), nil
		},
	})
}
