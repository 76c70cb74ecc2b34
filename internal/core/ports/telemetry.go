package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records units of work (vertices) for progress reporting.
type Telemetry interface {
	// Record starts recording a new vertex.
	Record(ctx context.Context, name string, opts ...VertexOption) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	io.Writer
	// Complete marks the vertex as finished, with err nil on success.
	Complete(err error)
	// Cached marks the vertex as satisfied from cache.
	Cached()
}

// VertexConfig holds configuration for a starting vertex.
type VertexConfig struct {
	// Placeholder for future per-vertex configuration.
}

// VertexOption is a functional option for configuring a vertex.
type VertexOption func(*VertexConfig)

type vertexCtxKey struct{}

// ContextWithVertex stores a vertex in the context.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexCtxKey{}, v)
}

// VertexFromContext retrieves the current vertex, or nil if none is recording.
func VertexFromContext(ctx context.Context) Vertex {
	v, _ := ctx.Value(vertexCtxKey{}).(Vertex)
	return v
}
