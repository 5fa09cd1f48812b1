package cycler

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Interval is a half-open date range [Start, End) between two consecutive
// resolved boundaries, truncated at the series' own start and end dates.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls within the interval, treating Start as
// inclusive and End as exclusive.
func (iv Interval) Contains(d time.Time) bool {
	d = startOfDayUTC(d)
	return !d.Before(iv.Start) && d.Before(iv.End)
}

// Days returns the interval length in whole days.
func (iv Interval) Days() int {
	return int(iv.End.Sub(iv.Start) / (24 * time.Hour))
}

// String formats the interval as "[YYYY-MM-DD, YYYY-MM-DD)".
func (iv Interval) String() string {
	return fmt.Sprintf("[%s, %s)", iv.Start.Format(dateLayout), iv.End.Format(dateLayout))
}
