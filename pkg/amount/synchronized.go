package amount

import (
	"context"
	"log/slog"

	"github.com/MacroPower/racelab/pkg/syncs"
)

// accumulatorLocks is shared by every [SynchronizedModifier] created without
// [WithLocker].
var accumulatorLocks = syncs.NewKeyLock[*Accumulator]()

// SynchronizedModifier adds to an [Accumulator] under mutual exclusion.
//
// The lock is keyed on the accumulator, not the modifier, so any number of
// synchronized modifiers sharing a locker serialize their adds to the same
// accumulator. The read, the sum and the write all happen while the lock is
// held; adds are therefore linearized and none are lost.
type SynchronizedModifier struct {
	target    *Accumulator
	logger    *slog.Logger
	locker    syncs.KeyLocker[*Accumulator]
	afterRead func()
}

// NewSynchronizedModifier creates a new [SynchronizedModifier] for target.
func NewSynchronizedModifier(target *Accumulator, opts ...ModifierOpts) *SynchronizedModifier {
	c := newModifierConfig(opts)

	return &SynchronizedModifier{
		target: target,
		logger: c.logger,
		locker: c.locker,
	}
}

// Add adds value to the accumulator, blocking until no other synchronized add
// on the same accumulator is in flight.
func (m *SynchronizedModifier) Add(value float64) {
	m.AddContext(context.Background(), value)
}

// AddContext is like [SynchronizedModifier.Add]. The context is only used to
// annotate the trace record; it does not bound the wait for the lock.
func (m *SynchronizedModifier) AddContext(ctx context.Context, value float64) {
	m.locker.Lock(m.target)
	defer m.locker.Unlock(m.target)

	before := m.target.Get()

	traceAdd(ctx, m.logger, before, value)

	if m.afterRead != nil {
		m.afterRead()
	}

	sum := before + value
	m.target.Set(sum)
}
