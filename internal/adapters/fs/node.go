package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/classdex/internal/adapters/classfile"
	"go.trai.ch/classdex/internal/core/ports"
)

const (
	WalkerNodeID        graft.ID = "adapter.fs.walker"
	ModuleIndexerNodeID graft.ID = "adapter.fs.module_indexer"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.ModuleIndexer]{
		ID:        ModuleIndexerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID, classfile.NodeID},
		Run: func(ctx context.Context) (ports.ModuleIndexer, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			parser, err := graft.Dep[ports.ClassParser](ctx)
			if err != nil {
				return nil, err
			}
			return NewModuleIndexer(walker, parser), nil
		},
	})
}
