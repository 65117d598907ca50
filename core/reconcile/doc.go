// Package reconcile merges partial series fetched for one entity.
//
// ProductionObservation collects one series per fuel code and keeps only the
// timestamps every code reported (the fully observed snapshots).
// ExchangeAccumulator nets the two directions of a border into a single
// signed flow. Both accumulators are local to a single fetch and are not safe
// for concurrent use.
package reconcile
