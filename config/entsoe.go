package config

import (
	"fmt"
	"time"
)

// EntsoeConfig configures the platform client. A missing token is not a
// validation error: only commands that query the platform need one.
type EntsoeConfig struct {
	BaseURL        string `json:"base_url"`
	Token          string `json:"token"`
	Timezone       string `json:"timezone"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	// RequestsPerMinute caps the request rate of the client.
	RequestsPerMinute int `json:"requests_per_minute"`
}

// DefaultRequestsPerMinute is the platform quota per token.
const DefaultRequestsPerMinute = 400

// SetDefaults applies sane defaults.
func (c *EntsoeConfig) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://web-api.tp.entsoe.eu/api"
	}
	if c.Timezone == "" {
		c.Timezone = "Europe/Paris"
	}
	if c.RequestsPerMinute == 0 {
		c.RequestsPerMinute = DefaultRequestsPerMinute
	}
}

// Validate checks the timezone, timeout and rate.
func (c EntsoeConfig) Validate() error {
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative")
	}
	if c.RequestsPerMinute < 0 {
		return fmt.Errorf("requests_per_minute must not be negative")
	}
	return nil
}

// Location returns the reference zone of price timestamps.
func (c EntsoeConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Timeout returns the HTTP client timeout; zero means none.
func (c EntsoeConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
