package entsoe_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willfleury/electricitymap/connectors/entsoe"
	"github.com/willfleury/electricitymap/connectors/entsoe/entsoetest"
	"github.com/willfleury/electricitymap/core/reconcile"
	"github.com/willfleury/electricitymap/core/timeseries"
)

var start = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

func TestParseConsumption(t *testing.T) {
	doc := entsoetest.Document(entsoetest.TimeSeries{
		OutDomain:  "10YFR-RTE------C",
		Start:      start,
		Resolution: "PT60M",
		Quantities: []float64{100, 200},
	})

	points, err := entsoe.ParseConsumption(doc)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, start.Add(time.Hour), points[0].Time)
	assert.Equal(t, 100.0, points[0].Value)
	assert.Equal(t, start.Add(2*time.Hour), points[1].Time)
	assert.Equal(t, 200.0, points[1].Value)
}

func TestParseConsumptionQuarterHour(t *testing.T) {
	doc := entsoetest.Document(entsoetest.TimeSeries{
		Start:      start,
		Resolution: "PT15M",
		Quantities: []float64{1, 2, 3, 4},
	})

	points, err := entsoe.ParseConsumption(doc)
	require.NoError(t, err)
	require.Len(t, points, 4)
	assert.Equal(t, start.Add(60*time.Minute), points[3].Time)
}

func TestParseNilDocument(t *testing.T) {
	c, err := entsoe.ParseConsumption(nil)
	require.NoError(t, err)
	assert.Nil(t, c)

	p, err := entsoe.ParseProduction(nil)
	require.NoError(t, err)
	assert.Nil(t, p)

	acc := reconcile.NewExchangeAccumulator()
	n, err := entsoe.ParseExchange(nil, entsoe.Import, acc)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, acc.Len())

	pr, err := entsoe.ParsePrice(nil, start)
	require.NoError(t, err)
	assert.Nil(t, pr)
}

func TestParseUnsupportedResolution(t *testing.T) {
	doc := entsoetest.Document(entsoetest.TimeSeries{
		Start:      start,
		Resolution: "PT1H",
		Quantities: []float64{1},
	})

	_, err := entsoe.ParseConsumption(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, timeseries.ErrUnsupportedResolution)
}

func TestParseMalformedDocument(t *testing.T) {
	_, err := entsoe.ParseConsumption([]byte("<GL_MarketDocument><TimeSeries>"))
	assert.ErrorIs(t, err, entsoe.ErrMalformedDocument)
}

func TestParseRFC3339Start(t *testing.T) {
	doc := []byte(`<GL_MarketDocument>
  <TimeSeries>
    <Period>
      <timeInterval><start>2023-01-01T01:00:00+01:00</start></timeInterval>
      <resolution>PT60M</resolution>
      <Point><position>1</position><quantity>5</quantity></Point>
    </Period>
  </TimeSeries>
</GL_MarketDocument>`)

	points, err := entsoe.ParseConsumption(doc)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.True(t, points[0].Time.Equal(start.Add(time.Hour)))
}

func TestParseProductionSplitsBlocks(t *testing.T) {
	doc := entsoetest.Document(
		entsoetest.TimeSeries{InDomain: "10YFR-RTE------C", Start: start, Quantities: []float64{500, 600}},
		entsoetest.TimeSeries{OutDomain: "10YFR-RTE------C", Start: start, Quantities: []float64{40}},
	)

	points, err := entsoe.ParseProduction(doc)
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, start.Add(time.Hour), points[0].Time)
	assert.Equal(t, 500.0, points[0].Production)
	assert.Equal(t, 40.0, points[0].Storage)

	assert.Equal(t, start.Add(2*time.Hour), points[1].Time)
	assert.Equal(t, 600.0, points[1].Production)
	assert.Zero(t, points[1].Storage)
}

func TestParseProductionLastWriteWins(t *testing.T) {
	doc := entsoetest.Document(
		entsoetest.TimeSeries{InDomain: "X", Start: start, Quantities: []float64{10}},
		entsoetest.TimeSeries{InDomain: "X", Start: start, Quantities: []float64{20}},
	)

	points, err := entsoe.ParseProduction(doc)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 20.0, points[0].Production)
}

func TestParseExchangeNetting(t *testing.T) {
	t1 := start.Add(time.Hour)
	imp := entsoetest.Document(entsoetest.TimeSeries{Start: start, Quantities: []float64{10}})
	exp := entsoetest.Document(entsoetest.TimeSeries{Start: start, Quantities: []float64{3}})

	acc := reconcile.NewExchangeAccumulator()
	n, err := entsoe.ParseExchange(imp, entsoe.Import, acc)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = entsoe.ParseExchange(exp, entsoe.Export, acc)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	settled := acc.Settled(t1)
	require.Len(t, settled, 1)
	assert.Equal(t, t1, settled[0].Time)
	assert.Equal(t, 7.0, settled[0].Quantity)
}

func TestParseExchangeSumsRecurringTimestamps(t *testing.T) {
	doc := entsoetest.Document(
		entsoetest.TimeSeries{Start: start, Quantities: []float64{4}},
		entsoetest.TimeSeries{Start: start, Quantities: []float64{6}},
	)

	acc := reconcile.NewExchangeAccumulator()
	n, err := entsoe.ParseExchange(doc, entsoe.Import, acc)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	settled := acc.Settled(start.Add(24 * time.Hour))
	require.Len(t, settled, 1)
	assert.Equal(t, 10.0, settled[0].Quantity)
}

func TestParsePriceDropsFuturePoints(t *testing.T) {
	doc := entsoetest.Document(entsoetest.TimeSeries{
		Currency: "EUR",
		Start:    start.Add(8 * time.Hour),
		Prices:   []float64{55.5, 61.25, 70},
	})
	now := time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)

	points, err := entsoe.ParsePrice(doc, now)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, start.Add(9*time.Hour), points[0].Time)
	assert.Equal(t, 55.5, points[0].Price)
	assert.Equal(t, "EUR", points[0].Currency)
	assert.Equal(t, now, points[1].Time)
	assert.Equal(t, 61.25, points[1].Price)
}

func TestParsePriceRequiresAmount(t *testing.T) {
	doc := entsoetest.Document(entsoetest.TimeSeries{Start: start, Quantities: []float64{1}})
	_, err := entsoe.ParsePrice(doc, start.Add(time.Hour))
	assert.ErrorIs(t, err, entsoe.ErrMalformedDocument)
}
