package downloads_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"testing/synctest"

	"go.loadout.dev/loadout/internal/adapters/downloads"
	"go.loadout.dev/loadout/internal/core/ports"
	"go.loadout.dev/loadout/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRunAll_BoundedParallelism(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		var running, peak atomic.Int32
		gate := make(chan struct{})

		tasks := make([]ports.DownloadTask, 4)
		for i := range tasks {
			task := mocks.NewMockDownloadTask(ctrl)
			task.EXPECT().Run(gomock.Any()).DoAndReturn(func(context.Context) error {
				n := running.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				<-gate
				running.Add(-1)
				return nil
			})
			tasks[i] = task
		}

		done := make(chan error, 1)
		go func() {
			done <- downloads.RunAll(context.Background(), tasks, 2)
		}()

		synctest.Wait()
		if got := peak.Load(); got != 2 {
			t.Errorf("Expected at most 2 concurrent tasks, observed peak %d", got)
		}

		close(gate)
		if err := <-done; err != nil {
			t.Errorf("RunAll failed: %v", err)
		}
	})
}

func TestRunAll_FirstErrorWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	taskErr := errors.New("disk full")

	failing := mocks.NewMockDownloadTask(ctrl)
	failing.EXPECT().Run(gomock.Any()).Return(taskErr)

	fine := mocks.NewMockDownloadTask(ctrl)
	fine.EXPECT().Run(gomock.Any()).Return(nil).AnyTimes()

	err := downloads.RunAll(context.Background(), []ports.DownloadTask{failing, fine}, 1)
	if !errors.Is(err, taskErr) {
		t.Fatalf("Expected the task error, got: %v", err)
	}
}

func TestRunAll_Empty(t *testing.T) {
	if err := downloads.RunAll(context.Background(), nil, 0); err != nil {
		t.Fatalf("Expected no error for an empty task list, got: %v", err)
	}
}
