package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/classdex/internal/core/ports"
)

const NodeID graft.ID = "adapter.descriptor_loader"

func init() {
	graft.Register(graft.Node[ports.DescriptorLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DescriptorLoader, error) {
			return NewLoader(), nil
		},
	})
}
