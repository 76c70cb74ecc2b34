package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/classdex/internal/adapters/telemetry/progrock"
	"go.trai.ch/classdex/internal/core/ports"
)

const NodeID graft.ID = "adapter.telemetry"

func init() {
	// The progrock recorder is the production telemetry adapter; NoOp exists
	// for tests that do not care about progress recording.
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{progrock.NodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			rec, err := graft.Dep[*progrock.Recorder](ctx)
			if err != nil {
				return nil, err
			}
			return rec, nil
		},
	})
}
