package entsoe

import (
	"bytes"
	"encoding/xml"
	"strings"
)

const noMatchingData = "No matching data found"

type acknowledgement struct {
	XMLName xml.Name
	Reasons []struct {
		Code string `xml:"code"`
		Text string `xml:"text"`
	} `xml:"Reason"`
}

// isAcknowledgement reports whether body is an Acknowledgement_MarketDocument,
// which the platform also returns with a 200 status when nothing matches.
func isAcknowledgement(body []byte) bool {
	dec := xml.NewDecoder(bytes.NewReader(body))
	for {
		tok, err := dec.Token()
		if err != nil {
			return false
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se.Name.Local == "Acknowledgement_MarketDocument"
		}
	}
}

// extractReason returns the text of the first Reason element, or "".
func extractReason(body []byte) string {
	var ack acknowledgement
	if err := xml.Unmarshal(body, &ack); err != nil {
		return ""
	}
	for _, r := range ack.Reasons {
		if txt := strings.TrimSpace(r.Text); txt != "" {
			return txt
		}
	}
	return ""
}

func isNoData(reason string) bool {
	return strings.Contains(reason, noMatchingData)
}
