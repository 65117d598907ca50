// Package infra contains technical adapters: structured logging, metrics
// exporters, error monitoring and the table writers (SQLite, InfluxDB,
// MQTT). They depend only on the interfaces defined in the core packages.
package infra
