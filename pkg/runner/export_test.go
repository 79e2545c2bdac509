package runner

import "context"

// RunInOrder runs the batch's jobs one after another in batch order.
func (b *Batch) RunInOrder(ctx context.Context) {
	for _, job := range b.jobs {
		job(ctx)
	}
}
