// Package workers runs the background workers of a client process side by
// side and stops them together.
package workers

import "context"

// Worker is a long-running background task.
//
// Run blocks until ctx is done or the worker fails. Returning nil after ctx
// is done is a clean stop.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
