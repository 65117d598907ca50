package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangeNetting(t *testing.T) {
	acc := NewExchangeAccumulator()
	acc.Add(t0, 10)
	acc.Add(t0, -3)
	pts := acc.Settled(t0)
	require.Len(t, pts, 1)
	assert.Equal(t, 7.0, pts[0].Quantity)
}

func TestExchangeSettledDropsFuture(t *testing.T) {
	acc := NewExchangeAccumulator()
	acc.Add(t0, 1)
	acc.Add(t0.Add(time.Hour), 2)
	acc.Add(t0.Add(-time.Hour), 3)

	pts := acc.Settled(t0)
	require.Len(t, pts, 2)
	assert.True(t, pts[0].Time.Equal(t0))
	assert.True(t, pts[1].Time.Equal(t0.Add(-time.Hour)))

	assert.Nil(t, acc.Settled(t0.Add(-2*time.Hour)))
}
