package entsoe

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/willfleury/electricitymap/core/logger"
	"github.com/willfleury/electricitymap/core/metrics"
)

// Option configures a Client.
type Option func(*Client) error

// WithBaseURL overrides the API endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) error {
		if strings.TrimSpace(u) == "" {
			return fmt.Errorf("entsoe: empty base url")
		}
		c.baseURL = u
		return nil
	}
}

// WithToken sets the security token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) error {
		c.token = strings.TrimSpace(token)
		return nil
	}
}

// WithHTTPClient replaces the HTTP client shared by all requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("entsoe: nil http client")
		}
		c.http = hc
		return nil
	}
}

// WithRecorder records one event per request.
func WithRecorder(r metrics.RequestRecorder) Option {
	return func(c *Client) error {
		if r != nil {
			c.recorder = r
		}
		return nil
	}
}

// WithLogger sets the client logger.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) error {
		if l != nil {
			c.log = l
		}
		return nil
	}
}

// WithRateLimit allows at most perMinute requests per minute, with bursts of
// up to burst requests. The platform rejects tokens exceeding 400 per minute.
func WithRateLimit(perMinute, burst int) Option {
	return func(c *Client) error {
		if perMinute <= 0 || burst <= 0 {
			return fmt.Errorf("entsoe: rate limit must be positive, got %d/min burst %d", perMinute, burst)
		}
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst)
		return nil
	}
}
