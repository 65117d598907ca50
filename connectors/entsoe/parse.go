package entsoe

import (
	"strings"
	"time"

	"github.com/willfleury/electricitymap/core/model"
	"github.com/willfleury/electricitymap/core/reconcile"
	"github.com/willfleury/electricitymap/core/timeseries"
)

// Direction selects the sign applied to exchange quantities.
type Direction int

const (
	// Import quantities are added as reported.
	Import Direction = iota
	// Export quantities are negated before being added.
	Export
)

// walk calls fn for every point of every period with its resolved timestamp.
func walk(md *marketDocument, fn func(ts timeSeries, p point, at time.Time) error) error {
	for _, ts := range md.TimeSeries {
		for _, per := range ts.Periods {
			start, err := parseInstant(per.Start)
			if err != nil {
				return err
			}
			resolution := strings.TrimSpace(per.Resolution)
			for _, p := range per.Points {
				at, err := timeseries.PositionTime(start, p.Position, resolution)
				if err != nil {
					return err
				}
				if err := fn(ts, p, at); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// ParseConsumption returns one point per reported quantity, in document
// order. A nil document means no data and yields nil.
func ParseConsumption(doc []byte) ([]model.TimePoint, error) {
	if doc == nil {
		return nil, nil
	}
	md, err := decodeDocument(doc)
	if err != nil {
		return nil, err
	}
	var out []model.TimePoint
	err = walk(md, func(_ timeSeries, p point, at time.Time) error {
		q, err := p.quantity()
		if err != nil {
			return err
		}
		out = append(out, model.TimePoint{Time: at, Value: q})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ParseProduction splits a per-fuel document into production and storage
// values. A block carrying an inBiddingZone_Domain.mRID is production,
// otherwise it is storage (consumption by the unit). When a timestamp recurs
// the later block overwrites the slot it reports.
func ParseProduction(doc []byte) ([]model.ProductionPoint, error) {
	if doc == nil {
		return nil, nil
	}
	md, err := decodeDocument(doc)
	if err != nil {
		return nil, err
	}
	var out []model.ProductionPoint
	index := make(map[time.Time]int)
	err = walk(md, func(ts timeSeries, p point, at time.Time) error {
		q, err := p.quantity()
		if err != nil {
			return err
		}
		isProduction := ts.InDomain != nil
		i, ok := index[at]
		if !ok {
			i = len(out)
			index[at] = i
			out = append(out, model.ProductionPoint{Time: at})
		}
		if isProduction {
			out[i].Production = q
		} else {
			out[i].Storage = q
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ParseExchange adds the document's quantities to acc, negated for Export,
// and returns how many points were read. A nil document adds nothing.
func ParseExchange(doc []byte, dir Direction, acc *reconcile.ExchangeAccumulator) (int, error) {
	if doc == nil {
		return 0, nil
	}
	md, err := decodeDocument(doc)
	if err != nil {
		return 0, err
	}
	n := 0
	err = walk(md, func(_ timeSeries, p point, at time.Time) error {
		q, err := p.quantity()
		if err != nil {
			return err
		}
		if dir == Export {
			q = -q
		}
		acc.Add(at, q)
		n++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// ParsePrice returns settled prices. Points after now are provisional and
// are dropped.
func ParsePrice(doc []byte, now time.Time) ([]model.PricePoint, error) {
	if doc == nil {
		return nil, nil
	}
	md, err := decodeDocument(doc)
	if err != nil {
		return nil, err
	}
	var out []model.PricePoint
	err = walk(md, func(ts timeSeries, p point, at time.Time) error {
		if at.After(now) {
			return nil
		}
		v, err := p.price()
		if err != nil {
			return err
		}
		out = append(out, model.PricePoint{Time: at, Price: v, Currency: strings.TrimSpace(ts.Currency)})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
