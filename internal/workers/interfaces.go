// Package workers provides a group of background workers that share one
// cancelable lifetime.
// It defines the Worker interface and a Workers aggregate that starts every
// worker in its own goroutine and stops them together.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run blocks until the work is done or ctx is cancelled; it must return
// promptly after cancellation.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// WorkerFunc adapts an ordinary function to the Worker interface.
type WorkerFunc func(ctx context.Context)

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) {
	f(ctx)
}
