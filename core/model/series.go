package model

import "time"

// TimePoint is a single resolved observation.
type TimePoint struct {
	Time  time.Time
	Value float64
}

// ProductionPoint is one resolved timestamp of a per-fuel production document.
// Production and Storage come from blocks flowing into, respectively out of,
// the bidding zone; the slot not reported by any block stays 0.
type ProductionPoint struct {
	Time       time.Time
	Production float64
	Storage    float64
}

// ProductionValue is the (production, storage) pair recorded for one fuel code.
type ProductionValue struct {
	Production float64
	Storage    float64
}

// ExchangePoint is a signed net quantity at one timestamp.
type ExchangePoint struct {
	Time     time.Time
	Quantity float64
}

// PricePoint is a settled day-ahead price.
type PricePoint struct {
	Time     time.Time
	Price    float64
	Currency string
}
