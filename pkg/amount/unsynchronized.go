package amount

import (
	"context"
	"log/slog"
)

// UnsynchronizedModifier adds to an [Accumulator] with no coordination.
//
// Each add reads the amount, computes the sum and writes it back as separate
// steps. Two concurrent adds may both read the same amount, in which case the
// later write discards the earlier one. Use [SynchronizedModifier] when the
// accumulator is shared.
type UnsynchronizedModifier struct {
	target    *Accumulator
	logger    *slog.Logger
	afterRead func()
}

// NewUnsynchronizedModifier creates a new [UnsynchronizedModifier] for target.
func NewUnsynchronizedModifier(target *Accumulator, opts ...ModifierOpts) *UnsynchronizedModifier {
	c := newModifierConfig(opts)

	return &UnsynchronizedModifier{
		target: target,
		logger: c.logger,
	}
}

// Add adds value to the accumulator.
func (m *UnsynchronizedModifier) Add(value float64) {
	m.AddContext(context.Background(), value)
}

// AddContext adds value to the accumulator. The context is only used to
// annotate the trace record.
func (m *UnsynchronizedModifier) AddContext(ctx context.Context, value float64) {
	before := m.target.Get()

	traceAdd(ctx, m.logger, before, value)

	if m.afterRead != nil {
		m.afterRead()
	}

	sum := before + value
	m.target.Set(sum)
}
