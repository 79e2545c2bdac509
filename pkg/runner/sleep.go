package runner

import (
	"context"
	"time"
)

// Sleep pauses for d, or until ctx is done. Interruption is not reported; the
// caller carries on either way.
//
// Sleeping is only a guess at when jobs finish. Prefer [Execution.Wait].
func Sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
