package runner

import (
	"context"

	"github.com/hashicorp/go-multierror"
)

// Execution tracks the jobs started by [Batch.Execute].
type Execution struct {
	err  error
	errs chan error
	done chan struct{}
	n    int
}

func newExecution(n int) *Execution {
	return &Execution{
		n:    n,
		errs: make(chan error, n),
		done: make(chan struct{}),
	}
}

// finish must be called once, after every job has returned.
func (e *Execution) finish() {
	close(e.errs)

	var merr error
	for err := range e.errs {
		merr = multierror.Append(merr, err)
	}

	e.err = merr

	close(e.done)
}

// Len returns the number of jobs started.
func (e *Execution) Len() int {
	return e.n
}

// Done returns a channel that is closed once every job has finished.
func (e *Execution) Done() <-chan struct{} {
	return e.done
}

// Wait blocks until every job has finished. It returns the failures of all
// jobs that panicked, each wrapping [ErrJobPanicked], or nil.
func (e *Execution) Wait() error {
	<-e.done

	return e.err
}

// WaitContext is like [Execution.Wait], but gives up when ctx is done and
// returns the context's error. Jobs keep running in that case.
func (e *Execution) WaitContext(ctx context.Context) error {
	select {
	case <-e.done:
		return e.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
