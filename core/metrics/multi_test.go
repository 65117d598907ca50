package metrics

import (
	"errors"
	"testing"

	"github.com/willfleury/electricitymap/core/factory"
)

type recordSink struct {
	count int
	err   error
}

func (r *recordSink) RecordRequest(RequestEvent) error {
	r.count++
	return r.err
}

func (r *recordSink) RecordFetch(FetchEvent) error {
	r.count++
	return r.err
}

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordRequest(RequestEvent{}); err != nil {
		t.Fatalf("record request: %v", err)
	}
	if err := m.RecordFetch(FetchEvent{}); err != nil {
		t.Fatalf("record fetch: %v", err)
	}
	if s1.count != 2 || s2.count != 2 {
		t.Fatalf("events not forwarded")
	}
}

func TestMultiSinkStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	s1 := &recordSink{err: boom}
	s2 := &recordSink{}
	if err := NewMultiSink(s1, s2).RecordFetch(FetchEvent{}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if s2.count != 0 {
		t.Fatalf("second sink should not be called")
	}
}

func TestNewMetricsSink(t *testing.T) {
	s, err := NewMetricsSink(nil)
	if err != nil || s == nil {
		t.Fatalf("empty config: %v", err)
	}
	s, err = NewMetricsSink([]factory.ModuleConfig{{Type: "nop"}, {Type: "nop"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, ok := s.(*MultiSink); !ok {
		t.Fatalf("expected MultiSink, got %T", s)
	}
	if _, err := NewMetricsSink([]factory.ModuleConfig{{Type: "missing"}}); err == nil {
		t.Fatal("expected error for unknown type")
	}
}
