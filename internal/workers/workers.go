package workers

import (
	"context"
	"sync"
)

// Workers runs a fixed set of workers under one derived context. The group is
// idle until Start is called.
type Workers struct {
	workers []Worker

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New returns an idle group of workers.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start stops any previous run, then launches every worker in its own
// goroutine under a context derived from ctx.
func (w *Workers) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	defer w.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	for _, worker := range w.workers {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			worker.Run(runCtx)
		}()
	}
}

// Cancel cancels the running workers without waiting for them. It may be
// called from inside a worker. Safe to call when the group is not running.
func (w *Workers) Cancel() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Wait blocks until every worker of the last run has returned. Calling it
// from inside a worker deadlocks.
func (w *Workers) Wait() {
	w.wg.Wait()
}

// Stop cancels the running workers and blocks until they have exited.
func (w *Workers) Stop() {
	w.Cancel()
	w.Wait()
}
