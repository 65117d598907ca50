package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/willfleury/electricitymap/config"
	"github.com/willfleury/electricitymap/connectors/entsoe"
	"github.com/willfleury/electricitymap/core/fetch"
	coremetrics "github.com/willfleury/electricitymap/core/metrics"
	"github.com/willfleury/electricitymap/core/monitoring"
	"github.com/willfleury/electricitymap/core/sink"
	"github.com/willfleury/electricitymap/infra/logger"
	"github.com/willfleury/electricitymap/infra/metrics"
	inframon "github.com/willfleury/electricitymap/infra/monitoring"

	// writer registrations
	_ "github.com/willfleury/electricitymap/infra/influx"
	_ "github.com/willfleury/electricitymap/infra/mqtt"
	_ "github.com/willfleury/electricitymap/infra/sqlite"
)

// Service wires the platform client, the fetcher and its observers from
// configuration.
type Service struct {
	Fetcher *fetch.Fetcher
	Monitor monitoring.Monitor
	cfg     *config.Config
	log     logger.Logger
}

// New creates a Service from the configuration. It fails when no security
// token is configured.
func New(cfg *config.Config) (*Service, error) {
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return nil, err
	}
	log := logger.New("service")

	ms, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	mon, err := inframon.NewSentryMonitor(cfg.Sentry)
	if err != nil {
		return nil, fmt.Errorf("sentry: %w", err)
	}
	opts := []entsoe.Option{
		entsoe.WithBaseURL(cfg.Entsoe.BaseURL),
		entsoe.WithToken(cfg.Entsoe.Token),
		entsoe.WithHTTPClient(&http.Client{Timeout: cfg.Entsoe.Timeout()}),
		entsoe.WithRecorder(ms),
		entsoe.WithLogger(logger.New("entsoe")),
	}
	if rpm := cfg.Entsoe.RequestsPerMinute; rpm > 0 {
		opts = append(opts, entsoe.WithRateLimit(rpm, rpm))
	}
	client, err := entsoe.NewClient(opts...)
	if err != nil {
		return nil, err
	}
	f := fetch.New(client,
		fetch.WithRecorder(ms),
		fetch.WithMonitor(mon),
		fetch.WithLogger(logger.New("fetch")),
		fetch.WithLocation(cfg.Entsoe.Location()),
	)
	return &Service{Fetcher: f, Monitor: mon, cfg: cfg, log: log}, nil
}

// Collector builds the scheduled collector writing to the configured sinks.
// The caller closes the returned writer.
func (s *Service) Collector() (*Collector, sink.Writer, error) {
	w, err := sink.NewWriter(s.cfg.Sinks)
	if err != nil {
		return nil, nil, fmt.Errorf("sinks: %w", err)
	}
	return NewCollector(s.Fetcher, w, s.cfg.Collector, logger.New("collector")), w, nil
}

// Run starts the Prometheus endpoint, when configured, and the collector.
// It blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	c, w, err := s.Collector()
	if err != nil {
		return err
	}
	defer func() {
		if err := w.Close(); err != nil {
			s.log.Errorf("close sinks: %v", err)
		}
	}()
	if addr := s.cfg.Metrics.PrometheusAddr; addr != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, addr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	c.RunOnce(ctx)
	return c.Run(ctx)
}

// Close flushes pending error reports.
func (s *Service) Close() {
	s.Monitor.Flush(flushTimeout)
}
