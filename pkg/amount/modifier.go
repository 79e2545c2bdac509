package amount

import (
	"context"
	"log/slog"

	"github.com/MacroPower/racelab/pkg/syncs"
	"github.com/MacroPower/racelab/pkg/unit"
)

// Adder adds values to an [Accumulator].
type Adder interface {
	Add(value float64)
	AddContext(ctx context.Context, value float64)
}

var (
	_ Adder = (*UnsynchronizedModifier)(nil)
	_ Adder = (*SynchronizedModifier)(nil)
)

type ModifierOpts func(*modifierConfig)

type modifierConfig struct {
	logger *slog.Logger
	locker syncs.KeyLocker[*Accumulator]
}

// WithLogger sets the logger used for add traces. Defaults to
// [slog.Default].
func WithLogger(logger *slog.Logger) ModifierOpts {
	return func(c *modifierConfig) {
		c.logger = logger
	}
}

// WithLocker sets the locker a [SynchronizedModifier] uses to serialize adds
// on its accumulator. Defaults to a process-wide [syncs.KeyLock], which makes
// all synchronized modifiers of the same accumulator exclude each other. It
// has no effect on an [UnsynchronizedModifier].
func WithLocker(locker syncs.KeyLocker[*Accumulator]) ModifierOpts {
	return func(c *modifierConfig) {
		c.locker = locker
	}
}

func newModifierConfig(opts []ModifierOpts) modifierConfig {
	c := modifierConfig{}
	for _, opt := range opts {
		opt(&c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	if c.locker == nil {
		c.locker = accumulatorLocks
	}

	return c
}

// traceAdd records the amount seen before an add.
func traceAdd(ctx context.Context, logger *slog.Logger, before, value float64) {
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}

	attrs := []slog.Attr{
		slog.Float64("amount", before),
		slog.Float64("add", value),
	}
	if id, ok := unit.FromContext(ctx); ok {
		attrs = append(attrs, slog.String("unit", id))
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "add operation", attrs...)
}
