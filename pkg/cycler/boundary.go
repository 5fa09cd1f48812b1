package cycler

import "time"

// Boundary returns the concrete calendar date of the pos-th anchor in year.
func (c *CycleSet) Boundary(year, pos int) time.Time {
	m, d := c.ResolveForYear(pos, year)
	return newDate(year, m, d)
}

// NextBoundary advances (year, pos) by one anchor, wrapping to position 0
// of the next year after the last anchor. Together with PrevBoundary this
// is the single place that crosses year boundaries; index arithmetic and
// cursor stepping both route through it.
func (c *CycleSet) NextBoundary(year, pos int) (int, int) {
	pos++
	if pos == len(c.anchors) {
		return year + 1, 0
	}
	return year, pos
}

// PrevBoundary is the mirror of NextBoundary, wrapping to the last anchor
// of the previous year before position 0.
func (c *CycleSet) PrevBoundary(year, pos int) (int, int) {
	pos--
	if pos < 0 {
		return year - 1, len(c.anchors) - 1
	}
	return year, pos
}
