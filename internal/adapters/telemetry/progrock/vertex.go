package progrock

import (
	"github.com/vito/progrock"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Write forwards diagnostic output to the vertex's stdout stream.
func (v *Vertex) Write(p []byte) (int, error) {
	return v.vertex.Stdout().Write(p)
}

// Complete marks the vertex as finished, successfully or with an error.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks the vertex as a cache hit.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
