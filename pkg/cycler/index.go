package cycler

import (
	"fmt"
	"sort"
	"time"
)

// The index engine works on global anchor positions: the pos-th anchor of
// year y sits at g = y*Size() + pos. Canonicalization fixes the per-year
// anchor count, so interval ordinals translate to global positions with
// integer arithmetic alone and no operation scans the series.

func (c *Cycler) globalPos(year, pos int) int {
	return year*c.cycles.Size() + pos
}

func (c *Cycler) splitGlobal(g int) (year, pos int) {
	return g / c.cycles.Size(), g % c.cycles.Size()
}

// rankAfter returns the position of the first anchor in year whose resolved
// date is strictly after d, or Size() if none is. Resolution preserves the
// template order within a year, so binary search applies.
func (c *Cycler) rankAfter(year int, d time.Time) int {
	return sort.Search(c.cycles.Size(), func(pos int) bool {
		return c.cycles.Boundary(year, pos).After(d)
	})
}

// rankAtOrAfter is rankAfter with an inclusive comparison.
func (c *Cycler) rankAtOrAfter(year int, d time.Time) int {
	return sort.Search(c.cycles.Size(), func(pos int) bool {
		return !c.cycles.Boundary(year, pos).Before(d)
	})
}

// firstGlobalPos locates the first anchor strictly after the series start.
// That anchor ends interval 0, whose start is clamped to the series start.
func (c *Cycler) firstGlobalPos() int {
	return c.globalPos(c.start.Year(), 0) + c.rankAfter(c.start.Year(), c.start)
}

// computeSize counts the intervals between the series bounds: whole anchor
// steps from the boundary after start up to the boundary at or after end,
// plus one for the end-clamped tail.
func (c *Cycler) computeSize() int {
	endAfter := c.globalPos(c.end.Year(), 0) + c.rankAtOrAfter(c.end.Year(), c.end)
	return endAfter - c.firstGlobal + 1
}

// Size returns the total number of intervals in the series, including the
// truncated first and last intervals.
func (c *Cycler) Size() int { return c.size }

// IndexToInterval returns the interval at ordinal index i. Interval 0
// starts at the series start and the last interval ends at the series end;
// all other boundaries come from the annual template.
func (c *Cycler) IndexToInterval(i int) (Interval, error) {
	defer c.observe("index_to_interval", time.Now())
	if i < 0 || i >= c.size {
		return Interval{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, c.size)
	}
	return c.intervalAt(i), nil
}

// intervalAt assumes i is within [0, size).
func (c *Cycler) intervalAt(i int) Interval {
	iv := Interval{Start: c.start, End: c.end}
	if i == 0 {
		if c.size > 1 {
			iv.End = c.cycles.Boundary(c.splitGlobal(c.firstGlobal))
		}
		return iv
	}
	year, pos := c.splitGlobal(c.firstGlobal + i - 1)
	iv.Start = c.cycles.Boundary(year, pos)
	if i < c.size-1 {
		iv.End = c.cycles.Boundary(c.cycles.NextBoundary(year, pos))
	}
	return iv
}

// IndexFromDate returns the ordinal index of the interval containing d.
// A date equal to an interior boundary belongs to the interval starting
// there; d equal to the series end belongs to the last interval, since
// intervals are half-open and end is the closed terminal clamp.
func (c *Cycler) IndexFromDate(d time.Time) (int, error) {
	defer c.observe("index_from_date", time.Now())
	d = startOfDayUTC(d)
	if d.Before(c.start) || d.After(c.end) {
		return 0, fmt.Errorf("%w: %s not in [%s, %s]", ErrDateOutOfRange,
			d.Format(dateLayout), c.start.Format(dateLayout), c.end.Format(dateLayout))
	}
	return c.indexOf(d), nil
}

// indexOf assumes start <= d <= end.
func (c *Cycler) indexOf(d time.Time) int {
	if d.Equal(c.end) {
		return c.size - 1
	}
	// global position of the last anchor at or before d
	last := c.globalPos(d.Year(), 0) + c.rankAfter(d.Year(), d) - 1
	i := last - c.firstGlobal + 1
	// the truncated first and last intervals absorb dates beyond their
	// template boundary
	if i < 0 {
		return 0
	}
	if i >= c.size {
		return c.size - 1
	}
	return i
}

// IntervalFromDate returns the interval containing d. The result is always
// identical to composing IndexFromDate with IndexToInterval; only the
// duplicate validation is skipped.
func (c *Cycler) IntervalFromDate(d time.Time) (Interval, error) {
	defer c.observe("interval_from_date", time.Now())
	d = startOfDayUTC(d)
	if d.Before(c.start) || d.After(c.end) {
		return Interval{}, fmt.Errorf("%w: %s not in [%s, %s]", ErrDateOutOfRange,
			d.Format(dateLayout), c.start.Format(dateLayout), c.end.Format(dateLayout))
	}
	return c.intervalAt(c.indexOf(d)), nil
}

func (c *Cycler) observe(op string, begin time.Time) {
	c.metrics.RecordLookup(op, time.Since(begin))
}
