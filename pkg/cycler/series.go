package cycler

// ToSlice materializes the whole series as a list of intervals. It is built
// by random-access lookup of every ordinal index, so the result is
// consistent with IndexToInterval by construction. The cursor does not move.
func (c *Cycler) ToSlice() []Interval {
	out := make([]Interval, c.size)
	for i := range out {
		out[i] = c.intervalAt(i)
	}
	return out
}

// ToStrings formats the whole series as "[start, end)" strings.
func (c *Cycler) ToStrings() []string {
	out := make([]string, c.size)
	for i := range out {
		out[i] = c.intervalAt(i).String()
	}
	return out
}
