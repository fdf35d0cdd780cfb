// Package progress provides the Progrock implementation of the progress
// reporting adapter.
package progress

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.loadout.dev/loadout/internal/core/ports"
)

// Recorder implements ports.ProgressReporter using progrock.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Begin starts recording a new vertex for the named unit of work.
func (r *Recorder) Begin(ctx context.Context, name string) (context.Context, ports.ProgressUnit) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	return ctx, &Unit{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Unit implements ports.ProgressUnit wrapping *progrock.VertexRecorder.
type Unit struct {
	vertex *progrock.VertexRecorder
}

// Done marks the unit as finished, failed when err is non-nil.
func (u *Unit) Done(err error) {
	u.vertex.Done(err)
}
