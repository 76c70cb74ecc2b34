package indexer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/classdex/internal/adapters/archive"
	"go.trai.ch/classdex/internal/adapters/cache"
	"go.trai.ch/classdex/internal/adapters/fs"
	"go.trai.ch/classdex/internal/adapters/logger"
	"go.trai.ch/classdex/internal/adapters/telemetry"
	"go.trai.ch/classdex/internal/core/ports"
)

const NodeID graft.ID = "engine.indexer.creator"

func init() {
	graft.Register(graft.Node[*Creator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ModuleIndexerNodeID,
			archive.NodeID,
			cache.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Creator, error) {
			modules, err := graft.Dep[ports.ModuleIndexer](ctx)
			if err != nil {
				return nil, err
			}
			archives, err := graft.Dep[ports.ArchiveIndexer](ctx)
			if err != nil {
				return nil, err
			}
			indexCache, err := graft.Dep[ports.IndexCache](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return New(modules, archives, indexCache, log, tel), nil
		},
	})
}
