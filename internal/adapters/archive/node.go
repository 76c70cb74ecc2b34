package archive

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/classdex/internal/adapters/classfile"
	"go.trai.ch/classdex/internal/core/ports"
)

const NodeID graft.ID = "adapter.archive.indexer"

func init() {
	graft.Register(graft.Node[ports.ArchiveIndexer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{classfile.NodeID},
		Run: func(ctx context.Context) (ports.ArchiveIndexer, error) {
			parser, err := graft.Dep[ports.ClassParser](ctx)
			if err != nil {
				return nil, err
			}
			return NewJarIndexer(parser), nil
		},
	})
}
