package reconcile

import (
	"sort"
	"time"

	"github.com/willfleury/electricitymap/core/model"
)

// ProductionObservation is a two-level map timestamp → fuel code → value.
type ProductionObservation struct {
	byTime map[time.Time]map[string]model.ProductionValue
}

// NewProductionObservation returns an empty observation.
func NewProductionObservation() *ProductionObservation {
	return &ProductionObservation{byTime: make(map[time.Time]map[string]model.ProductionValue)}
}

// Insert records v for code at t. The inner map for t is created on first
// insert; a second insert for the same (t, code) replaces the value.
func (o *ProductionObservation) Insert(t time.Time, code string, v model.ProductionValue) {
	key := t.UTC()
	codes, ok := o.byTime[key]
	if !ok {
		codes = make(map[string]model.ProductionValue)
		o.byTime[key] = codes
	}
	codes[code] = v
}

// InsertPoints records every point of one fuel code's series.
func (o *ProductionObservation) InsertPoints(code string, points []model.ProductionPoint) {
	for _, p := range points {
		o.Insert(p.Time, code, model.ProductionValue{Production: p.Production, Storage: p.Storage})
	}
}

// Len returns the number of distinct timestamps.
func (o *ProductionObservation) Len() int { return len(o.byTime) }

// Count returns the number of fuel codes observed at t.
func (o *ProductionObservation) Count(t time.Time) int { return len(o.byTime[t.UTC()]) }

// Values returns the fuel code → value map at t. The map must not be modified.
func (o *ProductionObservation) Values(t time.Time) map[string]model.ProductionValue {
	return o.byTime[t.UTC()]
}

// Complete drops timestamps after now, then keeps the timestamps whose fuel
// code count equals the maximum count among the remaining ones. The result is
// sorted newest first; nil means nothing survived.
func (o *ProductionObservation) Complete(now time.Time) []time.Time {
	settled := make([]time.Time, 0, len(o.byTime))
	maxCount := 0
	for t, codes := range o.byTime {
		if t.After(now) {
			continue
		}
		settled = append(settled, t)
		if len(codes) > maxCount {
			maxCount = len(codes)
		}
	}
	var out []time.Time
	for _, t := range settled {
		if len(o.byTime[t]) == maxCount {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	sortDescending(out)
	return out
}

func sortDescending(ts []time.Time) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].After(ts[j]) })
}
