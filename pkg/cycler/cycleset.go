package cycler

import (
	"fmt"
	"slices"
	"time"
)

// Anchor is a recurring (month, day) boundary within a calendar year.
// Feb 29 is a permitted anchor even though it does not exist every year;
// CycleSet resolves it per year.
type Anchor struct {
	Month time.Month
	Day   int
}

// Compare orders anchors chronologically within a year.
func (a Anchor) Compare(b Anchor) int {
	if a.Month != b.Month {
		return int(a.Month) - int(b.Month)
	}
	return a.Day - b.Day
}

// String formats the anchor as "(month, day)".
func (a Anchor) String() string {
	return fmt.Sprintf("(%d, %d)", a.Month, a.Day)
}

// valid reports whether the anchor is a real calendar date in at least one
// year: Feb 29 passes, Feb 30 and Apr 31 do not.
func (a Anchor) valid() bool {
	return a.Month >= time.January && a.Month <= time.December &&
		a.Day >= 1 && a.Day <= DaysInMonth(2000, a.Month) // 2000 is a leap year
}

var (
	feb28 = Anchor{Month: time.February, Day: 28}
	feb29 = Anchor{Month: time.February, Day: 29}
)

// CycleSet is the canonical annual boundary template: an ordered,
// duplicate-free set of anchors with the Feb 28/29 resolution applied once
// at construction. Immutable after NewCycleSet, so a CycleSet is safe to
// share.
type CycleSet struct {
	anchors []Anchor
	feb29   int // position of Feb 29 in anchors, -1 if absent
}

// NewCycleSet canonicalizes the supplied anchors: every entry is validated,
// duplicates are dropped, and the result is sorted chronologically. The leap
// rule is fixed here once. When the input holds both Feb 28 and Feb 29,
// Feb 29 is removed from the template and never produces a boundary in any
// year; when it holds Feb 29 alone, the anchor stays and resolves to Feb 28
// in non-leap years. Either way every year has the same anchor count.
func NewCycleSet(anchors []Anchor) (*CycleSet, error) {
	if len(anchors) == 0 {
		return nil, fmt.Errorf("%w: at least one anchor is required", ErrInvalidAnchor)
	}
	for i, a := range anchors {
		if !a.valid() {
			return nil, fmt.Errorf("%w: anchors[%d] = %s", ErrInvalidAnchor, i, a)
		}
	}

	canon := slices.Clone(anchors)
	slices.SortFunc(canon, Anchor.Compare)
	canon = slices.Compact(canon)

	if slices.Contains(canon, feb28) && slices.Contains(canon, feb29) {
		canon = slices.DeleteFunc(canon, func(a Anchor) bool { return a == feb29 })
	}

	return &CycleSet{
		anchors: canon,
		feb29:   slices.Index(canon, feb29),
	}, nil
}

// Size returns the number of anchors per year after canonicalization.
func (c *CycleSet) Size() int { return len(c.anchors) }

// AnchorAt returns the pos-th anchor in chronological order within a year.
func (c *CycleSet) AnchorAt(pos int) Anchor { return c.anchors[pos] }

// Anchors returns a copy of the canonical template.
func (c *CycleSet) Anchors() []Anchor { return slices.Clone(c.anchors) }

// ResolveForYear returns the concrete (month, day) of the pos-th anchor in
// year, substituting Feb 28 for Feb 29 when year is not a leap year.
func (c *CycleSet) ResolveForYear(pos, year int) (time.Month, int) {
	a := c.anchors[pos]
	if pos == c.feb29 && !IsLeapYear(year) {
		return time.February, 28
	}
	return a.Month, a.Day
}
