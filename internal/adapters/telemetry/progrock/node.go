package progrock

import (
	"context"

	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.telemetry.progrock"

func init() {
	graft.Register(graft.Node[*Recorder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Recorder, error) {
			return New(), nil
		},
	})
}
