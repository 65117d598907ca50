package fetch

import (
	"errors"
	"fmt"

	"github.com/willfleury/electricitymap/core/model"
)

// ErrSameCountry is returned when an exchange is requested between a country
// and itself.
var ErrSameCountry = errors.New("exchange requires two distinct countries")

// UpstreamError carries the message extracted from a platform error response.
type UpstreamError struct {
	Kind   model.Kind
	Reason string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("failed to get %s: %s", e.Kind, e.Reason)
}
