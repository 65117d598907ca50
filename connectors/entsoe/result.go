package entsoe

// Status is the outcome of one upstream request.
type Status int

const (
	// StatusFound carries a market document.
	StatusFound Status = iota
	// StatusEmpty means the platform has no matching data for the request.
	StatusEmpty
	// StatusFailed carries any other error message returned by the platform.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one query. Body is set for StatusFound, Reason for
// StatusEmpty and StatusFailed.
type Result struct {
	Status Status
	Body   []byte
	Reason string
}

// Found wraps a market document.
func Found(body []byte) Result { return Result{Status: StatusFound, Body: body} }

// Empty reports that no data matched the request.
func Empty(reason string) Result { return Result{Status: StatusEmpty, Reason: reason} }

// Failed reports an upstream error message.
func Failed(reason string) Result { return Result{Status: StatusFailed, Reason: reason} }

// Document returns the body for StatusFound and nil otherwise, which the
// parsers treat as no data.
func (r Result) Document() []byte {
	if r.Status != StatusFound {
		return nil
	}
	return r.Body
}
