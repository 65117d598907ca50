package reconcile

import (
	"time"

	"github.com/willfleury/electricitymap/core/model"
)

// ExchangeAccumulator sums signed quantities per timestamp.
type ExchangeAccumulator struct {
	net map[time.Time]float64
}

// NewExchangeAccumulator returns an empty accumulator.
func NewExchangeAccumulator() *ExchangeAccumulator {
	return &ExchangeAccumulator{net: make(map[time.Time]float64)}
}

// Add adds q to the running total at t.
func (a *ExchangeAccumulator) Add(t time.Time, q float64) {
	a.net[t.UTC()] += q
}

// Len returns the number of distinct timestamps.
func (a *ExchangeAccumulator) Len() int { return len(a.net) }

// Settled returns the net quantities at or before now, newest first.
func (a *ExchangeAccumulator) Settled(now time.Time) []model.ExchangePoint {
	times := make([]time.Time, 0, len(a.net))
	for t := range a.net {
		if !t.After(now) {
			times = append(times, t)
		}
	}
	if len(times) == 0 {
		return nil
	}
	sortDescending(times)
	out := make([]model.ExchangePoint, len(times))
	for i, t := range times {
		out[i] = model.ExchangePoint{Time: t, Quantity: a.net[t]}
	}
	return out
}
