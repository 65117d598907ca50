package entsoe

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMalformedDocument is returned when a document cannot be decoded.
var ErrMalformedDocument = errors.New("malformed document")

// marketDocument covers the GL, Publication and Balancing market documents:
// the root element name is not checked.
type marketDocument struct {
	TimeSeries []timeSeries `xml:"TimeSeries"`
}

type timeSeries struct {
	InDomain  *string  `xml:"inBiddingZone_Domain.mRID"`
	OutDomain *string  `xml:"outBiddingZone_Domain.mRID"`
	Currency  string   `xml:"currency_Unit.name"`
	Periods   []period `xml:"Period"`
}

type period struct {
	Start      string  `xml:"timeInterval>start"`
	Resolution string  `xml:"resolution"`
	Points     []point `xml:"Point"`
}

type point struct {
	Position int      `xml:"position"`
	Quantity *float64 `xml:"quantity"`
	Price    *float64 `xml:"price.amount"`
}

func decodeDocument(doc []byte) (*marketDocument, error) {
	var md marketDocument
	if err := xml.Unmarshal(doc, &md); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return &md, nil
}

var instantLayouts = []string{"2006-01-02T15:04Z07:00", time.RFC3339}

func parseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: bad start instant %q", ErrMalformedDocument, s)
}

func (p point) quantity() (float64, error) {
	if p.Quantity == nil {
		return 0, fmt.Errorf("%w: point %d has no quantity", ErrMalformedDocument, p.Position)
	}
	return *p.Quantity, nil
}

func (p point) price() (float64, error) {
	if p.Price == nil {
		return 0, fmt.Errorf("%w: point %d has no price.amount", ErrMalformedDocument, p.Position)
	}
	return *p.Price, nil
}
