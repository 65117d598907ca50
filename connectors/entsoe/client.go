// Package entsoe talks to the ENTSO-E transparency platform and decodes its
// market documents into resolved points.
package entsoe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/willfleury/electricitymap/core/logger"
	"github.com/willfleury/electricitymap/core/metrics"
)

// DefaultBaseURL is the public REST endpoint of the platform.
const DefaultBaseURL = "https://web-api.tp.entsoe.eu/api"

// ErrMissingToken is returned by NewClient when no security token is set.
var ErrMissingToken = errors.New("entsoe: no security token configured")

// Document and process type codes.
const (
	DocSystemTotalLoad  = "A65"
	DocActualGeneration = "A75"
	DocAggregatedFlows  = "A11"
	DocDayAheadPrices   = "A44"
	ProcessRealised     = "A16"
	periodLayout        = "2006010215"
	periodMinutes       = "00"
)

// Client issues queries over a single reusable HTTP client. It performs no
// retries and sets no timeout of its own. An optional limiter spaces
// requests to stay under the platform quota.
type Client struct {
	baseURL  string
	token    string
	http     *http.Client
	limiter  *rate.Limiter
	recorder metrics.RequestRecorder
	log      logger.Logger
}

// NewClient builds a client. A token is mandatory.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:  DefaultBaseURL,
		http:     &http.Client{},
		recorder: metrics.NopSink{},
		log:      logger.NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.token == "" {
		return nil, ErrMissingToken
	}
	return c, nil
}

// QueryConsumption requests the realised total load of a bidding zone.
func (c *Client) QueryConsumption(ctx context.Context, domain string, start, end time.Time) (Result, error) {
	return c.query(ctx, url.Values{
		"documentType":          {DocSystemTotalLoad},
		"processType":           {ProcessRealised},
		"outBiddingZone_Domain": {domain},
	}, start, end)
}

// QueryProduction requests realised generation of one production type.
func (c *Client) QueryProduction(ctx context.Context, psrType, domain string, start, end time.Time) (Result, error) {
	return c.query(ctx, url.Values{
		"psrType":      {psrType},
		"documentType": {DocActualGeneration},
		"processType":  {ProcessRealised},
		"in_Domain":    {domain},
	}, start, end)
}

// QueryExchange requests physical flows from outDomain into inDomain.
func (c *Client) QueryExchange(ctx context.Context, inDomain, outDomain string, start, end time.Time) (Result, error) {
	return c.query(ctx, url.Values{
		"documentType": {DocAggregatedFlows},
		"in_Domain":    {inDomain},
		"out_Domain":   {outDomain},
	}, start, end)
}

// QueryPrice requests day-ahead prices of a bidding zone.
func (c *Client) QueryPrice(ctx context.Context, domain string, start, end time.Time) (Result, error) {
	return c.query(ctx, url.Values{
		"documentType": {DocDayAheadPrices},
		"in_Domain":    {domain},
		"out_Domain":   {domain},
	}, start, end)
}

// formatPeriod truncates to the hour, as the platform expects yyyyMMddHH00.
func formatPeriod(t time.Time) string {
	return t.UTC().Format(periodLayout) + periodMinutes
}

func (c *Client) query(ctx context.Context, params url.Values, start, end time.Time) (Result, error) {
	params.Set("periodStart", formatPeriod(start))
	params.Set("periodEnd", formatPeriod(end))
	params.Set("securityToken", c.token)
	docType := params.Get("documentType")

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return Result{}, fmt.Errorf("rate limit: %w", err)
		}
	}
	began := time.Now()
	res, err := c.do(ctx, params)
	status := "error"
	if err == nil {
		status = res.Status.String()
	}
	if rerr := c.recorder.RecordRequest(metrics.RequestEvent{
		DocumentType: docType,
		Status:       status,
		Duration:     time.Since(began),
		Time:         began,
	}); rerr != nil {
		c.log.Warnf("record request: %v", rerr)
	}
	if err != nil {
		return Result{}, err
	}
	c.log.Debugw("entsoe query", map[string]any{
		"document_type": docType,
		"psr_type":      params.Get("psrType"),
		"status":        status,
		"reason":        res.Reason,
	})
	return res, nil
}

func (c *Client) do(ctx context.Context, params url.Values) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read response: %w", err)
	}
	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if ok && !isAcknowledgement(body) {
		return Found(body), nil
	}
	reason := extractReason(body)
	if reason == "" {
		reason = fmt.Sprintf("unexpected status code: %d", resp.StatusCode)
	}
	if isNoData(reason) {
		return Empty(reason), nil
	}
	return Failed(reason), nil
}
