// Package telemetry provides gate progress recording, backed by Progrock.
package telemetry

import (
	"context"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"github.com/vito/progrock/console"

	"go.ledgerline.dev/preflight/internal/core/ports"
)

// Recorder implements ports.Tracer using the Progrock library. Each gate is
// recorded as one vertex, rendered as it progresses.
type Recorder struct {
	rec *progrock.Recorder
}

// New creates a new Recorder rendering gate progress to stderr.
func New() *Recorder {
	return NewRecorder(console.NewWriter(os.Stderr))
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		rec: progrock.NewRecorder(w),
	}
}

// Start begins recording a new vertex for the gate.
func (r *Recorder) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	return ctx, &vertexSpan{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.rec.Close()
}

// vertexSpan implements ports.Span wrapping *progrock.VertexRecorder.
type vertexSpan struct {
	vertex *progrock.VertexRecorder
	err    error
}

// Write forwards gate output to the vertex's stdout stream.
func (s *vertexSpan) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// RecordError marks the span as failed when it ends.
func (s *vertexSpan) RecordError(err error) {
	s.err = err
}

// End completes the vertex, carrying any recorded error.
func (s *vertexSpan) End() {
	s.vertex.Done(s.err)
}
