package progress_test

import (
	"context"
	"errors"
	"testing"

	"github.com/vito/progrock"
	"go.loadout.dev/loadout/internal/adapters/progress"
)

type captureWriter struct {
	updates []*progrock.StatusUpdate
}

func (w *captureWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.updates = append(w.updates, update)
	return nil
}

func (w *captureWriter) Close() error {
	return nil
}

func TestRecorder_BeginAndDone(t *testing.T) {
	w := &captureWriter{}
	rec := progress.NewRecorder(w)

	_, unit := rec.Begin(context.Background(), "checking for dependencies")
	unit.Done(nil)

	if err := rec.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	var sawVertex bool
	for _, update := range w.updates {
		if len(update.Vertexes) > 0 {
			sawVertex = true
			break
		}
	}
	if !sawVertex {
		t.Error("Expected at least one vertex status update")
	}
}

func TestRecorder_DoneWithError(t *testing.T) {
	w := &captureWriter{}
	rec := progress.NewRecorder(w)

	_, unit := rec.Begin(context.Background(), "resolving P7dR8mSH")
	unit.Done(errors.New("not found"))

	var sawError bool
	for _, update := range w.updates {
		for _, v := range update.Vertexes {
			if v.Error != nil {
				sawError = true
			}
		}
	}
	if !sawError {
		t.Error("Expected the failed unit to surface a vertex error")
	}
}
