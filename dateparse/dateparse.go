// Package dateparse implements the boundary date-filter semantics used
// for range queries: a date/time input accepted as either a bare
// `YYYY-MM-DD` calendar date or a full RFC 3339 timestamp, with "after"
// advancing a bare date by one day so that `after=D` means strictly
// after the end of day D.
//
// RFC 3339 is tried first since it alone preserves an explicit
// time-of-day, then falls back to a bare date at midnight UTC,
// incrementing by a day for the After bound.
package dateparse

import (
	"time"

	"github.com/vuthanhtung2412/rankgraph/apperror"
)

// Bound selects which side of a range value is increments.
type Bound int

const (
	// After means the parsed instant is a lower bound: a bare date D
	// parses to the start of the day following D, so that filtering by
	// "strictly after" excludes every instant on D itself.
	After Bound = iota
	// Before means the parsed instant is used as-is: a bare date D
	// parses to D's own midnight, with no day added.
	Before
)

const dateOnlyLayout = "2006-01-02"

// Parse parses value as either an RFC 3339 timestamp or a bare
// `YYYY-MM-DD` calendar date, applying bound's day-increment rule to
// the bare-date case. field names the offending query parameter for the
// InvalidQuery error it returns on failure.
func Parse(field, value string, bound Bound) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		if bound == After {
			t = t.AddDate(0, 0, 1)
		}
		return t, nil
	}
	return time.Time{}, apperror.InvalidQueryf(field,
		"%q is an invalid date-time; it should follow the YYYY-MM-DD or RFC 3339 date-time format", value)
}
