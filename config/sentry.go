package config

import "os"

// SentryConfig defines settings for Sentry error monitoring. An empty DSN
// disables reporting.
type SentryConfig struct {
	DSN              string  `json:"dsn"`
	Environment      string  `json:"environment"`
	TracesSampleRate float64 `json:"traces_sample_rate"`
	Release          string  `json:"release"`
}

// SetDefaults takes the environment from APP_ENV when unset.
func (s *SentryConfig) SetDefaults() {
	if s.Environment == "" {
		s.Environment = os.Getenv("APP_ENV")
	}
	if s.Environment == "" {
		s.Environment = "production"
	}
}
