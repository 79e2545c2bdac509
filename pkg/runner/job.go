package runner

import (
	"context"
	"errors"
)

// ErrJobPanicked indicates a job panicked while running.
var ErrJobPanicked = errors.New("job panicked")

// Job is a deferred action. The context is supplied by the runner and carries
// the identity of the unit running the job (see [unit.FromContext]).
type Job func(ctx context.Context)

// Func adapts a zero-argument function to a [Job].
func Func(fn func()) Job {
	return func(context.Context) {
		fn()
	}
}
