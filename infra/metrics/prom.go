package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/willfleury/electricitymap/core/metrics"
)

// PromSink records upstream requests and fetch outcomes in Prometheus metrics.
type PromSink struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	fetches  *prometheus.CounterVec
	rows     *prometheus.GaugeVec
}

// NewPromSink registers metrics on the default Prometheus registerer.
// The Prometheus server should be started separately with StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "entsoe_requests_total",
		Help: "Total number of requests sent to the transparency platform",
	}, []string{"document_type", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "entsoe_request_duration_seconds",
		Help:    "Duration of requests sent to the transparency platform",
		Buckets: prometheus.DefBuckets,
	}, []string{"document_type"})
	fetches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "grid_fetch_total",
		Help: "Total number of table fetches by outcome",
	}, []string{"kind", "outcome"})
	rows := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "grid_fetch_rows",
		Help: "Number of rows returned by the last fetch",
	}, []string{"kind", "country"})

	var err error
	if requests, err = register(reg, requests); err != nil {
		return nil, err
	}
	if latency, err = register(reg, latency); err != nil {
		return nil, err
	}
	if fetches, err = register(reg, fetches); err != nil {
		return nil, err
	}
	if rows, err = register(reg, rows); err != nil {
		return nil, err
	}
	return &PromSink{requests: requests, latency: latency, fetches: fetches, rows: rows}, nil
}

// register reuses an already registered collector of the same type.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordRequest counts the request and observes its duration.
func (s *PromSink) RecordRequest(ev coremetrics.RequestEvent) error {
	s.requests.WithLabelValues(ev.DocumentType, ev.Status).Inc()
	s.latency.WithLabelValues(ev.DocumentType).Observe(ev.Duration.Seconds())
	return nil
}

// RecordFetch counts the fetch outcome and sets the row gauge.
func (s *PromSink) RecordFetch(ev coremetrics.FetchEvent) error {
	kind := ev.Kind.String()
	s.fetches.WithLabelValues(kind, string(ev.Outcome)).Inc()
	if ev.Outcome != coremetrics.OutcomeFailed {
		s.rows.WithLabelValues(kind, ev.Entity).Set(float64(ev.Rows))
	}
	return nil
}
