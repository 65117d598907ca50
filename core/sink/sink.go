// Package sink defines where reconciled tables go once a fetch completes.
package sink

import (
	"context"

	"github.com/willfleury/electricitymap/core/model"
)

// Writer persists or publishes result tables. Implementations receive each
// table whole; an empty slice is never passed.
type Writer interface {
	WriteConsumption(ctx context.Context, rows []model.ConsumptionRow) error
	WriteProduction(ctx context.Context, rows []model.ProductionRow) error
	WriteExchange(ctx context.Context, rows []model.ExchangeRow) error
	WritePrice(ctx context.Context, rows []model.PriceRow) error
	Close() error
}

// NopWriter discards every table.
type NopWriter struct{}

func (NopWriter) WriteConsumption(context.Context, []model.ConsumptionRow) error { return nil }
func (NopWriter) WriteProduction(context.Context, []model.ProductionRow) error   { return nil }
func (NopWriter) WriteExchange(context.Context, []model.ExchangeRow) error       { return nil }
func (NopWriter) WritePrice(context.Context, []model.PriceRow) error             { return nil }
func (NopWriter) Close() error                                                   { return nil }
