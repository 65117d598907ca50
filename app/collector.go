package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/willfleury/electricitymap/config"
	"github.com/willfleury/electricitymap/core/logger"
	"github.com/willfleury/electricitymap/core/model"
	"github.com/willfleury/electricitymap/core/sink"
)

// Fetcher produces result tables. *fetch.Fetcher implements it.
type Fetcher interface {
	FetchConsumption(ctx context.Context, country string, start, end time.Time) ([]model.ConsumptionRow, error)
	FetchProduction(ctx context.Context, country string, start, end time.Time) ([]model.ProductionRow, error)
	FetchExchange(ctx context.Context, a, b string, start, end time.Time) ([]model.ExchangeRow, error)
	FetchPrice(ctx context.Context, country string, start, end time.Time) ([]model.PriceRow, error)
}

// Report counts the outcomes of one collection run.
type Report struct {
	Written int
	Absent  int
	Failed  int
}

// Collector periodically fetches the configured entities over a trailing
// window and hands every non-empty table to a sink. Entities are processed
// one at a time; a failing entity does not stop the run.
type Collector struct {
	fetcher Fetcher
	writer  sink.Writer
	cfg     config.CollectorConfig
	log     logger.Logger
	now     func() time.Time
}

// NewCollector builds a collector. cfg must have defaults applied.
func NewCollector(f Fetcher, w sink.Writer, cfg config.CollectorConfig, log logger.Logger) *Collector {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Collector{fetcher: f, writer: w, cfg: cfg, log: log, now: time.Now}
}

// Run executes RunOnce on the configured schedule until ctx is canceled. A
// run still in progress when the next tick fires makes that tick a no-op.
func (c *Collector) Run(ctx context.Context) error {
	sched := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := sched.AddFunc(c.cfg.Schedule, func() { c.RunOnce(ctx) }); err != nil {
		return err
	}
	c.log.Infof("collector scheduled %q for %d countries and %d exchanges",
		c.cfg.Schedule, len(c.cfg.Countries), len(c.cfg.Exchanges))
	sched.Start()
	<-ctx.Done()
	<-sched.Stop().Done()
	return nil
}

// RunOnce collects every configured entity once.
func (c *Collector) RunOnce(ctx context.Context) Report {
	end := c.now()
	start := end.Add(-time.Duration(c.cfg.WindowHours) * time.Hour)
	var rep Report

	for _, country := range c.cfg.Countries {
		for _, kind := range c.cfg.Kinds {
			if ctx.Err() != nil {
				return rep
			}
			k, _ := model.ParseKind(kind)
			n, err := c.collect(ctx, k, country, start, end)
			rep.add(n, err)
			if err != nil {
				c.log.Errorf("collect %s %s: %v", kind, country, err)
			}
		}
	}
	for _, pair := range c.cfg.Exchanges {
		if ctx.Err() != nil {
			return rep
		}
		a, b, err := config.SplitPair(pair)
		if err == nil {
			var rows []model.ExchangeRow
			rows, err = c.fetcher.FetchExchange(ctx, a, b, start, end)
			if err == nil && len(rows) > 0 {
				err = c.writer.WriteExchange(ctx, rows)
			}
			rep.add(len(rows), err)
		} else {
			rep.add(0, err)
		}
		if err != nil {
			c.log.Errorf("collect exchange %s: %v", pair, err)
		}
	}
	c.log.Infof("collection done: %d written, %d absent, %d failed", rep.Written, rep.Absent, rep.Failed)
	return rep
}

func (r *Report) add(rows int, err error) {
	switch {
	case err != nil:
		r.Failed++
	case rows == 0:
		r.Absent++
	default:
		r.Written++
	}
}

func (c *Collector) collect(ctx context.Context, kind model.Kind, country string, start, end time.Time) (int, error) {
	switch kind {
	case model.KindConsumption:
		rows, err := c.fetcher.FetchConsumption(ctx, country, start, end)
		if err != nil || len(rows) == 0 {
			return 0, err
		}
		return len(rows), c.writer.WriteConsumption(ctx, rows)
	case model.KindProduction:
		rows, err := c.fetcher.FetchProduction(ctx, country, start, end)
		if err != nil || len(rows) == 0 {
			return 0, err
		}
		return len(rows), c.writer.WriteProduction(ctx, rows)
	case model.KindPrice:
		rows, err := c.fetcher.FetchPrice(ctx, country, start, end)
		if err != nil || len(rows) == 0 {
			return 0, err
		}
		return len(rows), c.writer.WritePrice(ctx, rows)
	default:
		return 0, nil
	}
}
