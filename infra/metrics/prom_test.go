package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/willfleury/electricitymap/core/metrics"
	"github.com/willfleury/electricitymap/core/model"
)

func TestPromSinkRecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	require.NoError(t, sink.RecordRequest(coremetrics.RequestEvent{DocumentType: "A75", Status: "found", Duration: 120 * time.Millisecond}))
	require.NoError(t, sink.RecordRequest(coremetrics.RequestEvent{DocumentType: "A75", Status: "empty"}))
	require.NoError(t, sink.RecordRequest(coremetrics.RequestEvent{DocumentType: "A75", Status: "found"}))

	expected := `
# HELP entsoe_requests_total Total number of requests sent to the transparency platform
# TYPE entsoe_requests_total counter
entsoe_requests_total{document_type="A75",status="empty"} 1
entsoe_requests_total{document_type="A75",status="found"} 2
`
	assert.NoError(t, testutil.CollectAndCompare(sink.requests, strings.NewReader(expected)))
	assert.Equal(t, 1, testutil.CollectAndCount(sink.latency))
}

func TestPromSinkRecordFetch(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	require.NoError(t, sink.RecordFetch(coremetrics.FetchEvent{Kind: model.KindPrice, Entity: "FR", Outcome: coremetrics.OutcomeFound, Rows: 24}))
	require.NoError(t, sink.RecordFetch(coremetrics.FetchEvent{Kind: model.KindPrice, Entity: "DE", Outcome: coremetrics.OutcomeFailed}))

	assert.Equal(t, 1.0, testutil.ToFloat64(sink.fetches.WithLabelValues("price", "found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.fetches.WithLabelValues("price", "failed")))
	assert.Equal(t, 24.0, testutil.ToFloat64(sink.rows.WithLabelValues("price", "FR")))
	assert.Equal(t, 1, testutil.CollectAndCount(sink.rows))
}

func TestPromSinkReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	second, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	assert.Same(t, first.requests, second.requests)
}

func TestRegisteredSinkTypes(t *testing.T) {
	s, err := coremetrics.NewMetricsSink(nil)
	require.NoError(t, err)
	assert.IsType(t, coremetrics.NopSink{}, s)
}
