package cycler

import (
	"fmt"
	"time"
)

// MonthlyAnchors returns the twelve first-of-month anchors.
func MonthlyAnchors() []Anchor {
	anchors := make([]Anchor, 0, 12)
	for m := time.January; m <= time.December; m++ {
		anchors = append(anchors, Anchor{Month: m, Day: 1})
	}
	return anchors
}

// MonthEndAnchors returns the last day of each month. February uses Feb 29
// so the anchor resolves to the true month end in leap years.
func MonthEndAnchors() []Anchor {
	anchors := make([]Anchor, 0, 12)
	for m := time.January; m <= time.December; m++ {
		anchors = append(anchors, Anchor{Month: m, Day: DaysInMonth(2000, m)})
	}
	return anchors
}

// DailyAnchors returns every (month, day) pair of a leap year. Because both
// Feb 28 and Feb 29 are present, canonicalization drops Feb 29 and leap
// years get a single two-day interval from Feb 28 to Mar 1.
func DailyAnchors() []Anchor {
	anchors := make([]Anchor, 0, 366)
	for m := time.January; m <= time.December; m++ {
		for d := 1; d <= DaysInMonth(2000, m); d++ {
			anchors = append(anchors, Anchor{Month: m, Day: d})
		}
	}
	return anchors
}

// NewMonthly builds a Cycler whose intervals start on the first of each month.
func NewMonthly(start, end time.Time, config Config) (*Cycler, error) {
	return New(MonthlyAnchors(), start, end, config)
}

// NewMonthlyEnd builds a Cycler whose intervals end on the last day of each month.
func NewMonthlyEnd(start, end time.Time, config Config) (*Cycler, error) {
	return New(MonthEndAnchors(), start, end, config)
}

// NewDaily builds a Cycler with daily intervals.
func NewDaily(start, end time.Time, config Config) (*Cycler, error) {
	return New(DailyAnchors(), start, end, config)
}

// NewFromYears builds a Cycler whose bounds land exactly on template
// anchors: the startPos-th anchor of startYear and the endPos-th anchor of
// endYear, positions taken after canonicalization.
func NewFromYears(anchors []Anchor, startYear, startPos, endYear, endPos int, config Config) (*Cycler, error) {
	cycles, err := NewCycleSet(anchors)
	if err != nil {
		return nil, err
	}
	if startPos < 0 || startPos >= cycles.Size() {
		return nil, fmt.Errorf("%w: start anchor position %d not in [0, %d)", ErrIndexOutOfRange, startPos, cycles.Size())
	}
	if endPos < 0 || endPos >= cycles.Size() {
		return nil, fmt.Errorf("%w: end anchor position %d not in [0, %d)", ErrIndexOutOfRange, endPos, cycles.Size())
	}
	return New(cycles.Anchors(), cycles.Boundary(startYear, startPos), cycles.Boundary(endYear, endPos), config)
}
