package classfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/classdex/internal/core/ports"
)

const NodeID graft.ID = "adapter.classfile.parser"

func init() {
	graft.Register(graft.Node[ports.ClassParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ClassParser, error) {
			return NewParser(), nil
		},
	})
}
