package runner

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/MacroPower/racelab/pkg/unit"
)

// Batch is a shuffled sequence of jobs ready for dispatch.
type Batch struct {
	logger *slog.Logger
	jobs   []Job
	limit  int
}

// Len returns the number of jobs in the batch.
func (b *Batch) Len() int {
	return len(b.jobs)
}

// Execute starts every job of the batch in its own goroutine and returns
// without waiting for any of them. Each job runs exactly once.
//
// ctx only supplies values to the jobs; cancelling it does not stop or skip
// any job. Use the returned [Execution] to wait for completion.
func (b *Batch) Execute(ctx context.Context) *Execution {
	ctx = context.WithoutCancel(ctx)

	e := newExecution(len(b.jobs))

	var sem *semaphore.Weighted
	if b.limit > 0 {
		sem = semaphore.NewWeighted(int64(b.limit))
	}

	b.logger.DebugContext(ctx, "dispatching batch",
		slog.Int("jobs", len(b.jobs)),
		slog.Int("limit", b.limit),
	)

	var wg sync.WaitGroup
	wg.Add(len(b.jobs))

	for _, job := range b.jobs {
		id := unit.New()
		unitCtx := unit.NewContext(ctx, id)

		go func() {
			defer wg.Done()

			if sem != nil {
				// Cannot fail: unitCtx is never cancelled.
				if err := sem.Acquire(unitCtx, 1); err != nil {
					e.errs <- fmt.Errorf("unit %s: acquire: %w", id, err)

					return
				}
				defer sem.Release(1)
			}

			span := startUnitSpan(b.logger, id)

			err := runJob(unitCtx, job)
			span.Finish(unitCtx, err)

			if err != nil {
				b.logger.ErrorContext(unitCtx, "job failed",
					slog.String("unit", id),
					slog.Any("err", err),
				)

				e.errs <- err
			}
		}()
	}

	go func() {
		wg.Wait()
		e.finish()
	}()

	return e
}

func runJob(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			id, _ := unit.FromContext(ctx)
			err = fmt.Errorf("%w: unit %s: %v", ErrJobPanicked, id, r)
		}
	}()

	job(ctx)

	return nil
}
