package amount_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/racelab/pkg/amount"
	"github.com/MacroPower/racelab/pkg/log"
	"github.com/MacroPower/racelab/pkg/runner"
	"github.com/MacroPower/racelab/pkg/syncs"
	"github.com/MacroPower/racelab/pkg/unit"
)

func TestModifier_SingleAdd(t *testing.T) {
	t.Parallel()

	tcs := map[string]func(*amount.Accumulator) amount.Adder{
		"unsynchronized": func(a *amount.Accumulator) amount.Adder {
			return amount.NewUnsynchronizedModifier(a)
		},
		"synchronized": func(a *amount.Accumulator) amount.Adder {
			return amount.NewSynchronizedModifier(a)
		},
	}

	for name, newAdder := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			acc := amount.NewAccumulator(100)
			newAdder(acc).Add(1)
			assert.InDelta(t, 101.0, acc.Get(), 0)
		})
	}
}

func TestModifier_Trace(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	h, err := log.CreateHandler(buf, "debug", log.JSONFormat)
	require.NoError(t, err)

	acc := amount.NewAccumulator(100)
	m := amount.NewSynchronizedModifier(acc, amount.WithLogger(slog.New(h)))

	ctx := unit.NewContext(context.Background(), "unit-a")
	m.AddContext(ctx, 2.5)

	out := buf.String()
	assert.Contains(t, out, `"msg":"add operation"`)
	assert.Contains(t, out, `"amount":100`)
	assert.Contains(t, out, `"add":2.5`)
	assert.Contains(t, out, `"unit":"unit-a"`)
	assert.InDelta(t, 102.5, acc.Get(), 0)
}

func TestSynchronizedModifier_Exact(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		initial float64
		value   float64
		n       int
		opts    []runner.BuilderOpts
	}{
		"ten ones": {
			initial: 100,
			value:   1,
			n:       10,
		},
		"no adds": {
			initial: 42,
			value:   1,
			n:       0,
		},
		"many with limit": {
			initial: 0,
			value:   0.5,
			n:       500,
			opts:    []runner.BuilderOpts{runner.WithLimit(4)},
		},
		"fixed seed": {
			initial: -10,
			value:   2,
			n:       64,
			opts:    []runner.BuilderOpts{runner.WithSeed(7)},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			acc := amount.NewAccumulator(tc.initial)
			m := amount.NewSynchronizedModifier(acc)

			exec := runner.NewBuilder(tc.opts...).
				Repeat(tc.n, func(ctx context.Context) {
					m.AddContext(ctx, tc.value)
				}).
				Build().
				Execute(t.Context())

			require.NoError(t, exec.Wait())
			assert.InDelta(t, tc.initial+float64(tc.n)*tc.value, acc.Get(), 0)
		})
	}
}

func TestSynchronizedModifier_OverlappingAdds(t *testing.T) {
	t.Parallel()

	const n = 10

	acc := amount.NewAccumulator(100)
	m := amount.NewSynchronizedModifier(acc)

	// Give every add a chance to be preempted between read and write.
	m.SetAfterRead(func() { time.Sleep(time.Millisecond) })

	exec := runner.NewBuilder().
		Repeat(n, runner.Func(func() { m.Add(1) })).
		Build().
		Execute(t.Context())

	require.NoError(t, exec.Wait())
	assert.InDelta(t, 110.0, acc.Get(), 0)
}

func TestSynchronizedModifier_SharedAccumulator(t *testing.T) {
	t.Parallel()

	const n = 200

	acc := amount.NewAccumulator(0)
	a := amount.NewSynchronizedModifier(acc)
	b := amount.NewSynchronizedModifier(acc)

	exec := runner.NewBuilder().
		Repeat(n, runner.Func(func() { a.Add(1) })).
		Repeat(n, runner.Func(func() { b.Add(2) })).
		Build().
		Execute(t.Context())

	require.NoError(t, exec.Wait())
	assert.InDelta(t, float64(3*n), acc.Get(), 0)
}

func TestSynchronizedModifier_LockIsPerAccumulator(t *testing.T) {
	t.Parallel()

	kl := syncs.NewKeyLock[*amount.Accumulator]()

	first := amount.NewAccumulator(0)
	second := amount.NewAccumulator(0)

	blocked := amount.NewSynchronizedModifier(first, amount.WithLocker(kl))
	free := amount.NewSynchronizedModifier(second, amount.WithLocker(kl))

	release := make(chan struct{})
	reading := make(chan struct{})
	blocked.SetAfterRead(func() {
		close(reading)
		<-release
	})

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		blocked.Add(1)
	}()

	<-reading

	// The first accumulator's lock is held; the second must not wait for it.
	free.Add(5)
	assert.InDelta(t, 5.0, second.Get(), 0)

	close(release)
	wg.Wait()

	assert.InDelta(t, 1.0, first.Get(), 0)
	assert.Equal(t, 0, kl.Len())
}
