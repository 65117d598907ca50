// Package timeseries converts relative point positions into absolute instants.
package timeseries

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrUnsupportedResolution is returned for any resolution that is not a whole
// number of minutes. It is permanent: retrying the same document cannot succeed.
var ErrUnsupportedResolution = errors.New("unsupported resolution")

var minuteResolution = regexp.MustCompile(`^PT(\d+)M$`)

// Minutes parses an ISO 8601 duration of the form PT{N}M.
func Minutes(resolution string) (int, error) {
	m := minuteResolution.FindStringSubmatch(resolution)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedResolution, resolution)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedResolution, resolution)
	}
	return n, nil
}

// PositionTime returns start + position × resolution. Position 1 is the end
// of the first interval, not start itself.
func PositionTime(start time.Time, position int, resolution string) (time.Time, error) {
	n, err := Minutes(resolution)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(time.Duration(position*n) * time.Minute), nil
}
