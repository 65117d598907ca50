// Package metrics defines the events emitted while fetching grid data and the
// sinks that record them. Requests are recorded by the upstream client, fetch
// outcomes by the orchestrator. Sinks like PromSink live in infra/metrics and
// are created from configuration through the registry in factory.go; several
// configured sinks are combined with NewMultiSink.
package metrics
