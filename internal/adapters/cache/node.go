package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/classdex/internal/core/ports"
)

const NodeID graft.ID = "adapter.index_cache"

func init() {
	graft.Register(graft.Node[ports.IndexCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IndexCache, error) {
			return NewMemory(), nil
		},
	})
}
