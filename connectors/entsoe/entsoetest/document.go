// Package entsoetest builds market documents and fakes the platform endpoint
// for tests.
package entsoetest

import (
	"fmt"
	"strings"
	"time"
)

// TimeSeries describes one block of a generated document. Points are numbered
// from 1 in slice order. Exactly one of Quantities or Prices should be set.
type TimeSeries struct {
	// InDomain marks a production block when set.
	InDomain   string
	OutDomain  string
	Currency   string
	Start      time.Time
	Resolution string
	Quantities []float64
	Prices     []float64
}

// Document renders a GL_MarketDocument containing the given blocks.
func Document(series ...TimeSeries) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<GL_MarketDocument xmlns="urn:iec62325.351:tc57wg16:451-6:generationloaddocument:3:0">` + "\n")
	b.WriteString("  <mRID>test</mRID>\n")
	for _, ts := range series {
		b.WriteString("  <TimeSeries>\n")
		if ts.InDomain != "" {
			fmt.Fprintf(&b, "    <inBiddingZone_Domain.mRID codingScheme=\"A01\">%s</inBiddingZone_Domain.mRID>\n", ts.InDomain)
		}
		if ts.OutDomain != "" {
			fmt.Fprintf(&b, "    <outBiddingZone_Domain.mRID codingScheme=\"A01\">%s</outBiddingZone_Domain.mRID>\n", ts.OutDomain)
		}
		if ts.Currency != "" {
			fmt.Fprintf(&b, "    <currency_Unit.name>%s</currency_Unit.name>\n", ts.Currency)
		}
		resolution := ts.Resolution
		if resolution == "" {
			resolution = "PT60M"
		}
		b.WriteString("    <Period>\n")
		fmt.Fprintf(&b, "      <timeInterval>\n        <start>%s</start>\n      </timeInterval>\n", ts.Start.UTC().Format("2006-01-02T15:04Z"))
		fmt.Fprintf(&b, "      <resolution>%s</resolution>\n", resolution)
		for i, q := range ts.Quantities {
			fmt.Fprintf(&b, "      <Point>\n        <position>%d</position>\n        <quantity>%g</quantity>\n      </Point>\n", i+1, q)
		}
		for i, p := range ts.Prices {
			fmt.Fprintf(&b, "      <Point>\n        <position>%d</position>\n        <price.amount>%g</price.amount>\n      </Point>\n", i+1, p)
		}
		b.WriteString("    </Period>\n")
		b.WriteString("  </TimeSeries>\n")
	}
	b.WriteString("</GL_MarketDocument>\n")
	return []byte(b.String())
}

// Acknowledgement renders the document the platform returns on errors.
func Acknowledgement(code, text string) []byte {
	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<Acknowledgement_MarketDocument xmlns="urn:iec62325.351:tc57wg16:451-1:acknowledgementdocument:7:0">
  <mRID>ack</mRID>
  <Reason>
    <code>%s</code>
    <text>%s</text>
  </Reason>
</Acknowledgement_MarketDocument>
`, code, text))
}

// NoData is the acknowledgement returned when nothing matches a query.
func NoData() []byte {
	return Acknowledgement("999", "No matching data found for Data item ACTUAL_GENERATION_PER_PRODUCTION_TYPE [16.1.B&C].")
}
