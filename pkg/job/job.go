// Package job runs named background tasks on a fixed interval.
package job

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

type Runner struct {
	jobs []job
	wg   sync.WaitGroup
}

func NewRunner() *Runner {
	return &Runner{}
}

func (r *Runner) Register(name string, interval time.Duration, fn func(ctx context.Context) error) *Runner {
	r.jobs = append(r.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return r
}

// Start launches every registered job. Each job runs once immediately, then
// on its interval, until the context is cancelled.
func (r *Runner) Start(ctx context.Context) {
	for _, j := range r.jobs {
		r.wg.Add(1)
		go r.run(ctx, j)
	}
}

func (r *Runner) run(ctx context.Context, j job) {
	defer r.wg.Done()

	l := slog.Default().With("job", j.name)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		err := r.withRecover(ctx, l, j)
		if err != nil {
			l.Error("job failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
		}
	}
}

func (r *Runner) withRecover(ctx context.Context, l *slog.Logger, j job) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			l.Error("job panic", "error", rec, "stack", string(debug.Stack()))
		}
	}()

	return j.fn(ctx)
}

func (r *Runner) Stop() {
	r.wg.Wait()
}
