// Package sqlite persists result tables in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/willfleury/electricitymap/core/model"
)

// mixColumns are the SQL names of model.MixColumns, in the same order.
var mixColumns = []string{
	"prod_biomass", "prod_coal", "prod_gas", "prod_hydro", "prod_nuclear",
	"prod_oil", "prod_solar", "prod_wind", "prod_geothermal", "prod_unknown",
	"storage_hydro",
}

func schema() []string {
	mixDefs := make([]string, len(mixColumns))
	for i, c := range mixColumns {
		mixDefs[i] = c + " REAL"
	}
	return []string{
		`CREATE TABLE IF NOT EXISTS consumption (
        country_code TEXT NOT NULL,
        ts INTEGER NOT NULL,
        consumption REAL NOT NULL,
        PRIMARY KEY(country_code, ts)
    );`,
		`CREATE TABLE IF NOT EXISTS production (
        country_code TEXT NOT NULL,
        ts INTEGER NOT NULL,
        ` + strings.Join(mixDefs, ",\n        ") + `,
        PRIMARY KEY(country_code, ts)
    );`,
		`CREATE TABLE IF NOT EXISTS exchange (
        country_from TEXT NOT NULL,
        country_to TEXT NOT NULL,
        ts INTEGER NOT NULL,
        net_flow REAL NOT NULL,
        PRIMARY KEY(country_from, country_to, ts)
    );`,
		`CREATE TABLE IF NOT EXISTS price (
        country_code TEXT NOT NULL,
        ts INTEGER NOT NULL,
        currency TEXT NOT NULL,
        price REAL NOT NULL,
        PRIMARY KEY(country_code, ts)
    );`,
	}
}

// Store writes every table to SQLite. Rows are keyed by entity and
// timestamp; writing a row again replaces the stored values.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the database and ensures schema.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// one connection so that ":memory:" databases are shared
	db.SetMaxOpenConns(1)
	for _, stmt := range schema() {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// inTx runs one prepared statement for n rows inside a transaction.
func (s *Store) inTx(ctx context.Context, query string, n int, args func(i int) []any) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer func() { _ = stmt.Close() }()
	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, args(i)...); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// WriteConsumption upserts consumption rows.
func (s *Store) WriteConsumption(ctx context.Context, rows []model.ConsumptionRow) error {
	return s.inTx(ctx, `INSERT INTO consumption (country_code, ts, consumption)
        VALUES (?, ?, ?)
        ON CONFLICT(country_code, ts) DO UPDATE SET consumption = excluded.consumption`,
		len(rows), func(i int) []any {
			r := rows[i]
			return []any{r.CountryCode, r.Time.Unix(), r.Consumption}
		})
}

// WriteProduction upserts production rows. Absent categories are stored as NULL.
func (s *Store) WriteProduction(ctx context.Context, rows []model.ProductionRow) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(mixColumns)), ", ")
	updates := make([]string, len(mixColumns))
	for i, c := range mixColumns {
		updates[i] = c + " = excluded." + c
	}
	query := `INSERT INTO production (country_code, ts, ` + strings.Join(mixColumns, ", ") + `)
        VALUES (?, ?, ` + placeholders + `)
        ON CONFLICT(country_code, ts) DO UPDATE SET ` + strings.Join(updates, ", ")
	return s.inTx(ctx, query, len(rows), func(i int) []any {
		r := rows[i]
		args := []any{r.CountryCode, r.Time.Unix()}
		for _, v := range r.Mix.Values() {
			args = append(args, nullable(v))
		}
		return args
	})
}

// WriteExchange upserts exchange rows.
func (s *Store) WriteExchange(ctx context.Context, rows []model.ExchangeRow) error {
	return s.inTx(ctx, `INSERT INTO exchange (country_from, country_to, ts, net_flow)
        VALUES (?, ?, ?, ?)
        ON CONFLICT(country_from, country_to, ts) DO UPDATE SET net_flow = excluded.net_flow`,
		len(rows), func(i int) []any {
			r := rows[i]
			return []any{r.CountryFrom, r.CountryTo, r.Time.Unix(), r.NetFlow}
		})
}

// WritePrice upserts price rows.
func (s *Store) WritePrice(ctx context.Context, rows []model.PriceRow) error {
	return s.inTx(ctx, `INSERT INTO price (country_code, ts, currency, price)
        VALUES (?, ?, ?, ?)
        ON CONFLICT(country_code, ts) DO UPDATE SET
            currency = excluded.currency,
            price = excluded.price`,
		len(rows), func(i int) []any {
			r := rows[i]
			return []any{r.CountryCode, r.Time.Unix(), r.Currency, r.Price}
		})
}

func nullable(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func unix(ts int64) time.Time { return time.Unix(ts, 0).UTC() }
