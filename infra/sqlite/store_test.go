package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willfleury/electricitymap/core/factory"
	"github.com/willfleury/electricitymap/core/model"
	"github.com/willfleury/electricitymap/core/sink"
)

var t0 = time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "grid.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestConsumptionUpsert(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.WriteConsumption(ctx, []model.ConsumptionRow{
		{CountryCode: "FR", Time: t0, Consumption: 100},
		{CountryCode: "FR", Time: t0.Add(time.Hour), Consumption: 110},
	}))
	require.NoError(t, s.WriteConsumption(ctx, []model.ConsumptionRow{
		{CountryCode: "FR", Time: t0, Consumption: 105},
	}))

	rows, err := s.QueryConsumption(ctx, "FR", t0, t0.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, model.ConsumptionRow{CountryCode: "FR", Time: t0, Consumption: 105}, rows[0])
	assert.Equal(t, 110.0, rows[1].Consumption)
}

func TestProductionNullCategories(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	in := model.ProductionRow{
		CountryCode: "FR",
		Time:        t0,
		Mix: model.Mix{
			Nuclear:      model.Float(40000),
			Hydro:        model.Float(0),
			HydroStorage: model.Float(12),
		},
	}
	require.NoError(t, s.WriteProduction(ctx, []model.ProductionRow{in}))

	rows, err := s.QueryProduction(ctx, "FR", t0, t0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, in, rows[0])
	assert.Nil(t, rows[0].Coal)
}

func TestExchangeAndPrice(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.WriteExchange(ctx, []model.ExchangeRow{
		{CountryFrom: "DE", CountryTo: "FR", Time: t0, NetFlow: -250},
	}))
	ex, err := s.QueryExchange(ctx, "DE", "FR", t0.Add(-time.Hour), t0)
	require.NoError(t, err)
	require.Len(t, ex, 1)
	assert.Equal(t, -250.0, ex[0].NetFlow)

	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	require.NoError(t, s.WritePrice(ctx, []model.PriceRow{
		{CountryCode: "FR", Currency: "EUR", Price: 61.25, Time: t0.In(paris)},
	}))
	pr, err := s.QueryPrice(ctx, "FR", t0, t0)
	require.NoError(t, err)
	require.Len(t, pr, 1)
	assert.Equal(t, "EUR", pr[0].Currency)
	assert.True(t, pr[0].Time.Equal(t0))
}

func TestRegisteredWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reg.db")
	w, err := sink.NewWriter([]factory.ModuleConfig{{Type: "sqlite", Conf: map[string]any{"path": path}}})
	require.NoError(t, err)
	assert.IsType(t, &Store{}, w)
	require.NoError(t, w.Close())

	_, err = sink.NewWriter([]factory.ModuleConfig{{Type: "sqlite"}})
	assert.Error(t, err)
}
