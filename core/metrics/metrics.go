package metrics

import (
	"time"

	"github.com/willfleury/electricitymap/core/model"
)

// Outcome of one orchestrated fetch.
type Outcome string

const (
	OutcomeFound  Outcome = "found"
	OutcomeAbsent Outcome = "absent"
	OutcomeFailed Outcome = "failed"
)

// RequestEvent describes one upstream HTTP request.
type RequestEvent struct {
	DocumentType string
	// Status is found, empty, failed or error (transport failure).
	Status   string
	Duration time.Duration
	Time     time.Time
}

// RequestRecorder records upstream requests.
type RequestRecorder interface {
	RecordRequest(ev RequestEvent) error
}

// FetchEvent describes one orchestrated fetch for an entity.
type FetchEvent struct {
	Kind model.Kind
	// Entity is a country code, or "A-B" for an exchange pair.
	Entity   string
	Outcome  Outcome
	Requests int
	Rows     int
	Duration time.Duration
	Time     time.Time
}

// FetchRecorder records fetch outcomes.
type FetchRecorder interface {
	RecordFetch(ev FetchEvent) error
}

// MetricsSink is the full set of recorders a configured sink provides.
type MetricsSink interface {
	RequestRecorder
	FetchRecorder
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordRequest(RequestEvent) error { return nil }
func (NopSink) RecordFetch(FetchEvent) error     { return nil }
