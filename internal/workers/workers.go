package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/logger"
)

// Workers is a named set of workers.
type Workers struct {
	names   []string
	workers []Worker
	logger  *logger.Logger
}

func New(logger *logger.Logger) *Workers {
	return &Workers{logger: logger}
}

// Add registers a worker. Workers must be added before Run.
func (w *Workers) Add(name string, worker Worker) *Workers {
	w.names = append(w.names, name)
	w.workers = append(w.workers, worker)
	return w
}

// Run starts every worker in its own goroutine and waits for all of them.
// The first failure cancels the others. Errors are joined.
func (w *Workers) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i, worker := range w.workers {
		name := w.names[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := worker.Run(ctx); err != nil {
				w.logger.Err(err).Str("func", "Workers.Run").Str("worker", name).Msg("worker failed")
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				mu.Unlock()
				cancel()
			}
		}()
	}

	wg.Wait()
	return errors.Join(errs...)
}

// Job is a ticker-driven task with its own start and stop.
type Job interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

// FromJob runs job for the lifetime of the worker.
func FromJob(job Job, interval time.Duration) Worker {
	return WorkerFunc(func(ctx context.Context) error {
		job.Start(ctx, interval)
		<-ctx.Done()
		job.Stop()
		return nil
	})
}
