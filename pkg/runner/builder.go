package runner

import (
	"log/slog"
	"math/rand/v2"
	"time"
)

type BuilderOpts func(*Builder)

// WithSeed makes the order produced by [Builder.Build] reproducible.
func WithSeed(seed uint64) BuilderOpts {
	return func(b *Builder) {
		b.seed = seed
	}
}

// WithLimit bounds how many jobs of a batch run at the same time. Every job
// still gets its own goroutine. Values below one mean no bound.
func WithLimit(n int) BuilderOpts {
	return func(b *Builder) {
		b.limit = n
	}
}

// WithLogger sets the logger used by batches. Defaults to [slog.Default].
func WithLogger(logger *slog.Logger) BuilderOpts {
	return func(b *Builder) {
		b.logger = logger
	}
}

// Builder accumulates jobs for a [Batch].
type Builder struct {
	logger *slog.Logger
	rng    *rand.Rand
	jobs   []Job
	seed   uint64
	limit  int
}

// NewBuilder creates a new [Builder]. Unless [WithSeed] is given, the shuffle
// is seeded from the current time and differs between runs.
func NewBuilder(opts ...BuilderOpts) *Builder {
	b := &Builder{
		seed: uint64(time.Now().UnixNano()),
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.Default()
	}

	b.rng = rand.New(rand.NewPCG(b.seed, b.seed))

	return b
}

// Repeat appends job to the builder count times. Calls accumulate. A
// non-positive count or a nil job adds nothing.
func (b *Builder) Repeat(count int, job Job) *Builder {
	if job == nil {
		return b
	}

	for range count {
		b.jobs = append(b.jobs, job)
	}

	return b
}

// Build returns a [Batch] holding every job added so far, in random order.
// The builder keeps its jobs, so later calls to Repeat and Build extend them.
func (b *Builder) Build() *Batch {
	jobs := make([]Job, len(b.jobs))
	copy(jobs, b.jobs)

	b.rng.Shuffle(len(jobs), func(i, j int) {
		jobs[i], jobs[j] = jobs[j], jobs[i]
	})

	return &Batch{
		jobs:   jobs,
		limit:  b.limit,
		logger: b.logger,
	}
}
