// Package telemetry provides progress-recording adapters.
package telemetry

import (
	"context"

	"go.trai.ch/classdex/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry adapter.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a no-op vertex.
func (t *NoOp) Record(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
	return ctx, &NoOpVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Write discards p and reports it as written.
func (v *NoOpVertex) Write(p []byte) (int, error) { return len(p), nil }

// Complete does nothing.
func (v *NoOpVertex) Complete(_ error) {}

// Cached does nothing.
func (v *NoOpVertex) Cached() {}
