package amount

// Accumulator holds a single mutable amount. It performs no synchronization;
// callers that share an Accumulator between goroutines must serialize access
// themselves, for example through a [SynchronizedModifier].
type Accumulator struct {
	amount float64
}

// NewAccumulator creates a new [Accumulator] holding initial.
func NewAccumulator(initial float64) *Accumulator {
	return &Accumulator{amount: initial}
}

// Get returns the current amount.
func (a *Accumulator) Get() float64 {
	return a.amount
}

// Set overwrites the current amount.
func (a *Accumulator) Set(v float64) {
	a.amount = v
}
