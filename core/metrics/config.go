package metrics

import "github.com/willfleury/electricitymap/core/factory"

// Config defines settings for metrics sinks.
type Config struct {
	// PrometheusAddr is the listen address of the /metrics endpoint; empty disables it.
	PrometheusAddr string                 `json:"prometheus_addr"`
	Sinks          []factory.ModuleConfig `json:"sinks"`
}
