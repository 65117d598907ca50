package sink

import (
	"context"
	"errors"

	"github.com/willfleury/electricitymap/core/model"
)

// Multi writes every table to all writers in order and stops at the first error.
type Multi struct {
	Writers []Writer
}

// NewMulti creates a Multi writer.
func NewMulti(ws ...Writer) *Multi { return &Multi{Writers: ws} }

func (m *Multi) WriteConsumption(ctx context.Context, rows []model.ConsumptionRow) error {
	for _, w := range m.Writers {
		if err := w.WriteConsumption(ctx, rows); err != nil {
			return err
		}
	}
	return nil
}

func (m *Multi) WriteProduction(ctx context.Context, rows []model.ProductionRow) error {
	for _, w := range m.Writers {
		if err := w.WriteProduction(ctx, rows); err != nil {
			return err
		}
	}
	return nil
}

func (m *Multi) WriteExchange(ctx context.Context, rows []model.ExchangeRow) error {
	for _, w := range m.Writers {
		if err := w.WriteExchange(ctx, rows); err != nil {
			return err
		}
	}
	return nil
}

func (m *Multi) WritePrice(ctx context.Context, rows []model.PriceRow) error {
	for _, w := range m.Writers {
		if err := w.WritePrice(ctx, rows); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every writer and joins their errors.
func (m *Multi) Close() error {
	var errs []error
	for _, w := range m.Writers {
		if err := w.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
