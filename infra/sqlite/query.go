package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/willfleury/electricitymap/core/model"
)

// QueryConsumption returns stored rows in [start,end], oldest first.
func (s *Store) QueryConsumption(ctx context.Context, country string, start, end time.Time) ([]model.ConsumptionRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT country_code, ts, consumption
        FROM consumption WHERE country_code = ? AND ts >= ? AND ts <= ? ORDER BY ts`,
		country, start.Unix(), end.Unix())
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []model.ConsumptionRow
	for rows.Next() {
		var r model.ConsumptionRow
		var ts int64
		if err := rows.Scan(&r.CountryCode, &ts, &r.Consumption); err != nil {
			return nil, err
		}
		r.Time = unix(ts)
		res = append(res, r)
	}
	return res, rows.Err()
}

// QueryProduction returns stored rows in [start,end], oldest first. NULL
// categories come back as nil.
func (s *Store) QueryProduction(ctx context.Context, country string, start, end time.Time) ([]model.ProductionRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT country_code, ts, `+strings.Join(mixColumns, ", ")+`
        FROM production WHERE country_code = ? AND ts >= ? AND ts <= ? ORDER BY ts`,
		country, start.Unix(), end.Unix())
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []model.ProductionRow
	for rows.Next() {
		var r model.ProductionRow
		var ts int64
		vals := make([]sql.NullFloat64, len(mixColumns))
		dest := []any{&r.CountryCode, &ts}
		for i := range vals {
			dest = append(dest, &vals[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		r.Time = unix(ts)
		fields := []**float64{
			&r.Biomass, &r.Coal, &r.Gas, &r.Hydro, &r.Nuclear,
			&r.Oil, &r.Solar, &r.Wind, &r.Geothermal, &r.Unknown,
			&r.HydroStorage,
		}
		for i, v := range vals {
			if v.Valid {
				*fields[i] = model.Float(v.Float64)
			}
		}
		res = append(res, r)
	}
	return res, rows.Err()
}

// QueryExchange returns stored rows for the ordered pair in [start,end], oldest first.
func (s *Store) QueryExchange(ctx context.Context, from, to string, start, end time.Time) ([]model.ExchangeRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT country_from, country_to, ts, net_flow
        FROM exchange WHERE country_from = ? AND country_to = ? AND ts >= ? AND ts <= ? ORDER BY ts`,
		from, to, start.Unix(), end.Unix())
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []model.ExchangeRow
	for rows.Next() {
		var r model.ExchangeRow
		var ts int64
		if err := rows.Scan(&r.CountryFrom, &r.CountryTo, &ts, &r.NetFlow); err != nil {
			return nil, err
		}
		r.Time = unix(ts)
		res = append(res, r)
	}
	return res, rows.Err()
}

// QueryPrice returns stored rows in [start,end], oldest first, in UTC.
func (s *Store) QueryPrice(ctx context.Context, country string, start, end time.Time) ([]model.PriceRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT country_code, ts, currency, price
        FROM price WHERE country_code = ? AND ts >= ? AND ts <= ? ORDER BY ts`,
		country, start.Unix(), end.Unix())
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []model.PriceRow
	for rows.Next() {
		var r model.PriceRow
		var ts int64
		if err := rows.Scan(&r.CountryCode, &ts, &r.Currency, &r.Price); err != nil {
			return nil, err
		}
		r.Time = unix(ts)
		res = append(res, r)
	}
	return res, rows.Err()
}
