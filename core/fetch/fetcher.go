package fetch

import (
	"context"
	"sort"
	"time"

	"github.com/willfleury/electricitymap/connectors/entsoe"
	"github.com/willfleury/electricitymap/core/category"
	"github.com/willfleury/electricitymap/core/logger"
	"github.com/willfleury/electricitymap/core/metrics"
	"github.com/willfleury/electricitymap/core/model"
	"github.com/willfleury/electricitymap/core/monitoring"
	"github.com/willfleury/electricitymap/core/reconcile"
)

// DefaultLocation is the reference zone of price timestamps.
const DefaultLocation = "Europe/Paris"

// Source issues the upstream queries. *entsoe.Client implements it.
type Source interface {
	QueryConsumption(ctx context.Context, domain string, start, end time.Time) (entsoe.Result, error)
	QueryProduction(ctx context.Context, psrType, domain string, start, end time.Time) (entsoe.Result, error)
	QueryExchange(ctx context.Context, inDomain, outDomain string, start, end time.Time) (entsoe.Result, error)
	QueryPrice(ctx context.Context, domain string, start, end time.Time) (entsoe.Result, error)
}

// Fetcher orchestrates queries, parsing and reconciliation for every table.
type Fetcher struct {
	source   Source
	recorder metrics.FetchRecorder
	monitor  monitoring.Monitor
	log      logger.Logger
	now      func() time.Time
	location *time.Location
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithRecorder records one event per fetch.
func WithRecorder(r metrics.FetchRecorder) Option {
	return func(f *Fetcher) {
		if r != nil {
			f.recorder = r
		}
	}
}

// WithMonitor reports hard failures.
func WithMonitor(m monitoring.Monitor) Option {
	return func(f *Fetcher) {
		if m != nil {
			f.monitor = m
		}
	}
}

// WithLogger sets the fetcher logger.
func WithLogger(l logger.Logger) Option {
	return func(f *Fetcher) {
		if l != nil {
			f.log = l
		}
	}
}

// WithClock replaces time.Now, which decides what counts as settled.
func WithClock(now func() time.Time) Option {
	return func(f *Fetcher) {
		if now != nil {
			f.now = now
		}
	}
}

// WithLocation sets the zone price timestamps are displayed in.
func WithLocation(loc *time.Location) Option {
	return func(f *Fetcher) {
		if loc != nil {
			f.location = loc
		}
	}
}

// New builds a Fetcher around source.
func New(source Source, opts ...Option) *Fetcher {
	f := &Fetcher{
		source:   source,
		recorder: metrics.NopSink{},
		monitor:  monitoring.NopMonitor{},
		log:      logger.NopLogger{},
		now:      time.Now,
		location: time.UTC,
	}
	if loc, err := time.LoadLocation(DefaultLocation); err == nil {
		f.location = loc
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchConsumption returns the realised load of country, newest last as
// published.
func (f *Fetcher) FetchConsumption(ctx context.Context, country string, start, end time.Time) (rows []model.ConsumptionRow, err error) {
	tr := f.track(model.KindConsumption, country)
	defer func() { tr.done(len(rows), err) }()

	domain, err := entsoe.Domain(country)
	if err != nil {
		return nil, err
	}
	res, err := tr.query(func() (entsoe.Result, error) {
		return f.source.QueryConsumption(ctx, domain, start, end)
	})
	if err != nil {
		return nil, err
	}
	points, err := entsoe.ParseConsumption(res.Document())
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, nil
	}
	rows = make([]model.ConsumptionRow, len(points))
	for i, p := range points {
		rows[i] = model.ConsumptionRow{CountryCode: country, Time: p.Time, Consumption: p.Value}
	}
	return rows, nil
}

// FetchProduction queries every production type in turn, keeps only the
// settled timestamps reported by the largest number of types and aggregates
// each into a Mix. Rows are sorted newest first.
func (f *Fetcher) FetchProduction(ctx context.Context, country string, start, end time.Time) (rows []model.ProductionRow, err error) {
	tr := f.track(model.KindProduction, country)
	defer func() { tr.done(len(rows), err) }()

	domain, err := entsoe.Domain(country)
	if err != nil {
		return nil, err
	}
	obs := reconcile.NewProductionObservation()
	for _, psr := range entsoe.PsrTypes() {
		res, err := tr.query(func() (entsoe.Result, error) {
			return f.source.QueryProduction(ctx, psr.Code, domain, start, end)
		})
		if err != nil {
			return nil, err
		}
		points, err := entsoe.ParseProduction(res.Document())
		if err != nil {
			return nil, err
		}
		obs.InsertPoints(psr.Code, points)
	}

	times := obs.Complete(f.now())
	if times == nil {
		return nil, nil
	}
	rows = make([]model.ProductionRow, len(times))
	for i, t := range times {
		production := make(category.Values)
		storage := make(category.Values)
		for code, v := range obs.Values(t) {
			desc := entsoe.PsrDescription(code)
			production[desc] = v.Production
			storage[desc] = v.Storage
		}
		rows[i] = model.ProductionRow{
			CountryCode: country,
			Time:        t,
			Mix:         category.Aggregate(production, storage),
		}
	}
	return rows, nil
}

// FetchExchange returns the net physical flow between a and b. The pair is
// ordered alphabetically: positive values flow from the first country to the
// second. Rows are sorted newest first.
func (f *Fetcher) FetchExchange(ctx context.Context, a, b string, start, end time.Time) (rows []model.ExchangeRow, err error) {
	pair := []string{a, b}
	sort.Strings(pair)
	from, to := pair[0], pair[1]

	tr := f.track(model.KindExchange, from+"-"+to)
	defer func() { tr.done(len(rows), err) }()

	if from == to {
		return nil, ErrSameCountry
	}
	fromDomain, err := entsoe.Domain(from)
	if err != nil {
		return nil, err
	}
	toDomain, err := entsoe.Domain(to)
	if err != nil {
		return nil, err
	}

	acc := reconcile.NewExchangeAccumulator()
	res, err := tr.query(func() (entsoe.Result, error) {
		return f.source.QueryExchange(ctx, toDomain, fromDomain, start, end)
	})
	if err != nil {
		return nil, err
	}
	n, err := entsoe.ParseExchange(res.Document(), entsoe.Import, acc)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	res, err = tr.query(func() (entsoe.Result, error) {
		return f.source.QueryExchange(ctx, fromDomain, toDomain, start, end)
	})
	if err != nil {
		return nil, err
	}
	if _, err := entsoe.ParseExchange(res.Document(), entsoe.Export, acc); err != nil {
		return nil, err
	}

	settled := acc.Settled(f.now())
	if settled == nil {
		return nil, nil
	}
	rows = make([]model.ExchangeRow, len(settled))
	for i, p := range settled {
		rows[i] = model.ExchangeRow{CountryFrom: from, CountryTo: to, Time: p.Time, NetFlow: p.Quantity}
	}
	return rows, nil
}

// FetchPrice returns settled day-ahead prices with timestamps in the
// fetcher's reference zone.
func (f *Fetcher) FetchPrice(ctx context.Context, country string, start, end time.Time) (rows []model.PriceRow, err error) {
	tr := f.track(model.KindPrice, country)
	defer func() { tr.done(len(rows), err) }()

	domain, err := entsoe.Domain(country)
	if err != nil {
		return nil, err
	}
	res, err := tr.query(func() (entsoe.Result, error) {
		return f.source.QueryPrice(ctx, domain, start, end)
	})
	if err != nil {
		return nil, err
	}
	points, err := entsoe.ParsePrice(res.Document(), f.now())
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, nil
	}
	rows = make([]model.PriceRow, len(points))
	for i, p := range points {
		rows[i] = model.PriceRow{
			CountryCode: country,
			Currency:    p.Currency,
			Price:       p.Price,
			Time:        p.Time.In(f.location),
		}
	}
	return rows, nil
}
