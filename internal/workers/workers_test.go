// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// blockingWorker считает запуски и завершается только по отмене контекста.
type blockingWorker struct {
	started atomic.Int64
	stopped atomic.Int64
}

func (b *blockingWorker) Run(ctx context.Context) {
	b.started.Add(1)
	<-ctx.Done()
	b.stopped.Add(1)
}

func TestWorkers_Start_AllWorkersAreRun(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ws := New(w1, w2, w3)

	ws.Start(context.Background())
	assert.Eventually(t, func() bool {
		return w1.started.Load() == 1 && w2.started.Load() == 1 && w3.started.Load() == 1
	}, time.Second, time.Millisecond)

	ws.Stop()
	for i, w := range []*blockingWorker{w1, w2, w3} {
		assert.Equal(t, int64(1), w.stopped.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Stop_BeforeStart_NoPanic(t *testing.T) {
	ws := New()

	// Stop без Start не должен паниковать
	assert.NotPanics(t, ws.Stop)
	assert.NotPanics(t, ws.Cancel)
}

func TestWorkers_Stop_Twice(t *testing.T) {
	w := &blockingWorker{}
	ws := New(w)

	ws.Start(context.Background())
	ws.Stop()
	assert.NotPanics(t, ws.Stop)
	assert.Equal(t, int64(1), w.stopped.Load())
}

func TestWorkers_Start_RestartsGroup(t *testing.T) {
	w := &blockingWorker{}
	ws := New(w)

	ws.Start(context.Background())
	ws.Start(context.Background())
	ws.Stop()

	// первый запуск должен быть остановлен перед вторым
	assert.Equal(t, int64(2), w.started.Load())
	assert.Equal(t, int64(2), w.stopped.Load())
}

func TestWorkers_ParentContextCancel(t *testing.T) {
	w := &blockingWorker{}
	ws := New(w)
	ctx, cancel := context.WithCancel(context.Background())

	ws.Start(ctx)
	cancel()
	ws.Wait()

	assert.Equal(t, int64(1), w.stopped.Load())
}

func TestWorkers_CancelFromInsideWorker(t *testing.T) {
	var ws *Workers
	peer := &blockingWorker{}
	quitter := WorkerFunc(func(ctx context.Context) {
		ws.Cancel()
	})
	ws = New(quitter, peer)

	ws.Start(context.Background())

	done := make(chan struct{})
	go func() {
		ws.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Cancel from inside a worker did not stop the group")
	}
	assert.Equal(t, int64(1), peer.stopped.Load())
}

func TestWorkerFunc_Run(t *testing.T) {
	var called bool
	WorkerFunc(func(context.Context) { called = true }).Run(context.Background())

	assert.True(t, called)
}
