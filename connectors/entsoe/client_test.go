package entsoe_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willfleury/electricitymap/connectors/entsoe"
	"github.com/willfleury/electricitymap/connectors/entsoe/entsoetest"
	"github.com/willfleury/electricitymap/core/metrics"
)

type requestLog struct {
	events []metrics.RequestEvent
}

func (r *requestLog) RecordRequest(ev metrics.RequestEvent) error {
	r.events = append(r.events, ev)
	return nil
}

func newTestClient(t *testing.T, srv *entsoetest.Server, opts ...entsoe.Option) *entsoe.Client {
	t.Helper()
	opts = append([]entsoe.Option{entsoe.WithBaseURL(srv.URL), entsoe.WithToken("secret")}, opts...)
	c, err := entsoe.NewClient(opts...)
	require.NoError(t, err)
	return c
}

func TestNewClientRequiresToken(t *testing.T) {
	_, err := entsoe.NewClient()
	assert.ErrorIs(t, err, entsoe.ErrMissingToken)

	_, err = entsoe.NewClient(entsoe.WithToken("   "))
	assert.ErrorIs(t, err, entsoe.ErrMissingToken)
}

func TestNewClientRejectsBadOptions(t *testing.T) {
	_, err := entsoe.NewClient(entsoe.WithToken("x"), entsoe.WithBaseURL(""))
	assert.Error(t, err)

	_, err = entsoe.NewClient(entsoe.WithToken("x"), entsoe.WithHTTPClient(nil))
	assert.Error(t, err)

	_, err = entsoe.NewClient(entsoe.WithToken("x"), entsoe.WithRateLimit(0, 1))
	assert.Error(t, err)
}

func TestRateLimitHoldsBackRequests(t *testing.T) {
	srv := entsoetest.NewServer(func(url.Values) entsoetest.Response {
		return entsoetest.Response{Body: entsoetest.NoData()}
	})
	defer srv.Close()
	c := newTestClient(t, srv, entsoe.WithRateLimit(1, 1))

	_, err := c.QueryConsumption(context.Background(), "10YFR-RTE------C", start, start.Add(time.Hour))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = c.QueryConsumption(ctx, "10YFR-RTE------C", start, start.Add(time.Hour))
	assert.ErrorContains(t, err, "rate limit")
	assert.Len(t, srv.Queries(), 1)
}

func TestQueryConsumptionFound(t *testing.T) {
	body := entsoetest.Document(entsoetest.TimeSeries{Start: start, Quantities: []float64{1}})
	srv := entsoetest.NewServer(func(url.Values) entsoetest.Response {
		return entsoetest.Response{Body: body}
	})
	defer srv.Close()
	rec := &requestLog{}
	c := newTestClient(t, srv, entsoe.WithRecorder(rec))

	end := start.Add(24*time.Hour + 30*time.Minute)
	res, err := c.QueryConsumption(context.Background(), "10YFR-RTE------C", start, end)
	require.NoError(t, err)
	assert.Equal(t, entsoe.StatusFound, res.Status)
	assert.Equal(t, body, res.Document())

	qs := srv.Queries()
	require.Len(t, qs, 1)
	q := qs[0]
	assert.Equal(t, "A65", q.Get("documentType"))
	assert.Equal(t, "A16", q.Get("processType"))
	assert.Equal(t, "10YFR-RTE------C", q.Get("outBiddingZone_Domain"))
	assert.Equal(t, "202301010000", q.Get("periodStart"))
	assert.Equal(t, "202301020000", q.Get("periodEnd"))
	assert.Equal(t, "secret", q.Get("securityToken"))

	require.Len(t, rec.events, 1)
	assert.Equal(t, "A65", rec.events[0].DocumentType)
	assert.Equal(t, "found", rec.events[0].Status)
}

func TestQueryProductionParams(t *testing.T) {
	srv := entsoetest.NewServer(func(url.Values) entsoetest.Response {
		return entsoetest.Response{Body: entsoetest.Document()}
	})
	defer srv.Close()
	c := newTestClient(t, srv)

	_, err := c.QueryProduction(context.Background(), "B16", "10YFR-RTE------C", start, start.Add(time.Hour))
	require.NoError(t, err)

	q := srv.Queries()[0]
	assert.Equal(t, "A75", q.Get("documentType"))
	assert.Equal(t, "B16", q.Get("psrType"))
	assert.Equal(t, "10YFR-RTE------C", q.Get("in_Domain"))
}

func TestQueryExchangeAndPriceParams(t *testing.T) {
	srv := entsoetest.NewServer(func(url.Values) entsoetest.Response {
		return entsoetest.Response{Body: entsoetest.Document()}
	})
	defer srv.Close()
	c := newTestClient(t, srv)
	ctx := context.Background()

	_, err := c.QueryExchange(ctx, "IN", "OUT", start, start.Add(time.Hour))
	require.NoError(t, err)
	_, err = c.QueryPrice(ctx, "ZONE", start, start.Add(time.Hour))
	require.NoError(t, err)

	qs := srv.Queries()
	require.Len(t, qs, 2)
	assert.Equal(t, "A11", qs[0].Get("documentType"))
	assert.Equal(t, "IN", qs[0].Get("in_Domain"))
	assert.Equal(t, "OUT", qs[0].Get("out_Domain"))
	assert.Equal(t, "A44", qs[1].Get("documentType"))
	assert.Equal(t, "ZONE", qs[1].Get("in_Domain"))
	assert.Equal(t, "ZONE", qs[1].Get("out_Domain"))
}

func TestQueryNoMatchingData(t *testing.T) {
	for name, status := range map[string]int{
		"error status": http.StatusBadRequest,
		"ok status":    http.StatusOK,
	} {
		t.Run(name, func(t *testing.T) {
			srv := entsoetest.NewServer(func(url.Values) entsoetest.Response {
				return entsoetest.Response{Status: status, Body: entsoetest.NoData()}
			})
			defer srv.Close()
			c := newTestClient(t, srv)

			res, err := c.QueryConsumption(context.Background(), "Z", start, start.Add(time.Hour))
			require.NoError(t, err)
			assert.Equal(t, entsoe.StatusEmpty, res.Status)
			assert.Contains(t, res.Reason, "No matching data found")
			assert.Nil(t, res.Document())
		})
	}
}

func TestQueryFailedReason(t *testing.T) {
	srv := entsoetest.NewServer(func(url.Values) entsoetest.Response {
		return entsoetest.Response{
			Status: http.StatusUnauthorized,
			Body:   entsoetest.Acknowledgement("999", "Unauthorized. Missing or invalid security token"),
		}
	})
	defer srv.Close()
	rec := &requestLog{}
	c := newTestClient(t, srv, entsoe.WithRecorder(rec))

	res, err := c.QueryPrice(context.Background(), "Z", start, start.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, entsoe.StatusFailed, res.Status)
	assert.Equal(t, "Unauthorized. Missing or invalid security token", res.Reason)
	assert.Equal(t, "failed", rec.events[0].Status)
}

func TestQueryFailedWithoutReason(t *testing.T) {
	srv := entsoetest.NewServer(func(url.Values) entsoetest.Response {
		return entsoetest.Response{Status: http.StatusServiceUnavailable, Body: []byte("busy")}
	})
	defer srv.Close()
	c := newTestClient(t, srv)

	res, err := c.QueryPrice(context.Background(), "Z", start, start.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, entsoe.StatusFailed, res.Status)
	assert.Equal(t, "unexpected status code: 503", res.Reason)
}

func TestQueryTransportError(t *testing.T) {
	srv := entsoetest.NewServer(func(url.Values) entsoetest.Response { return entsoetest.Response{} })
	rec := &requestLog{}
	c := newTestClient(t, srv, entsoe.WithRecorder(rec))
	srv.Close()

	_, err := c.QueryConsumption(context.Background(), "Z", start, start.Add(time.Hour))
	require.Error(t, err)
	require.Len(t, rec.events, 1)
	assert.Equal(t, "error", rec.events[0].Status)
}
