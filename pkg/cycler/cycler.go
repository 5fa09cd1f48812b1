// Package cycler generates a deterministic, indexable series of contiguous
// date intervals between a start and an end date, with interval boundaries
// drawn from a repeating annual template of (month, day) anchors. Intervals
// are half-open [start, end) ranges over the proleptic Gregorian calendar,
// with no time-of-day or time zone component.
package cycler

import (
	"fmt"
	"iter"
	"time"
)

// Cycler owns a canonical CycleSet, the series bounds, and a cursor over
// the conceptual interval series. The series itself is never materialized;
// every interval is derived from its ordinal index. Cursor state is the
// only mutable part, so a Cycler needs external synchronization if a single
// instance is shared across goroutines.
type Cycler struct {
	cycles *CycleSet
	start  time.Time
	end    time.Time

	firstGlobal int // global position of the first anchor strictly after start
	size        int

	pos              int // current interval index; posBeforeFirst / size at the sentinels
	startBeforeFirst bool

	logger  Logger
	metrics Metrics
}

const posBeforeFirst = -1

// Config carries optional construction settings. The zero value is valid.
type Config struct {
	// Logger receives construction and seek events. Defaults to NoopLogger.
	Logger Logger

	// Metrics receives lookup and traversal observations. Defaults to NoopMetrics.
	Metrics Metrics

	// StartBeforeFirst positions the cursor before the first interval so
	// that the first call to Next lands on interval 0. Useful when Next is
	// called at the top of a loop. Defaults to starting at interval 0.
	StartBeforeFirst bool
}

// New builds a Cycler over the anchors with the given series bounds. Any
// time-of-day on start or end is discarded. start must be strictly before
// end; no boundary is ever generated outside [start, end].
func New(anchors []Anchor, start, end time.Time, config Config) (*Cycler, error) {
	if config.Logger == nil {
		config.Logger = &NoopLogger{}
	}
	if config.Metrics == nil {
		config.Metrics = &NoopMetrics{}
	}

	cycles, err := NewCycleSet(anchors)
	if err != nil {
		return nil, err
	}

	start = startOfDayUTC(start)
	end = startOfDayUTC(end)
	if !start.Before(end) {
		return nil, fmt.Errorf("%w: start %s, end %s", ErrInvalidBounds,
			start.Format(dateLayout), end.Format(dateLayout))
	}

	c := &Cycler{
		cycles:  cycles,
		start:   start,
		end:     end,
		logger:  config.Logger,
		metrics: config.Metrics,
	}
	c.firstGlobal = c.firstGlobalPos()
	c.size = c.computeSize()
	if c.size < 1 {
		// unreachable given the bounds check, kept as an invariant guard
		return nil, fmt.Errorf("%w: bounds [%s, %s]", ErrEmptySeries,
			start.Format(dateLayout), end.Format(dateLayout))
	}
	c.Reset(config.StartBeforeFirst)

	c.logger.Info("cycler created",
		Field{Key: "anchors", Value: cycles.Size()},
		Field{Key: "intervals", Value: c.size},
		Field{Key: "start", Value: start.Format(dateLayout)},
		Field{Key: "end", Value: end.Format(dateLayout)},
	)
	return c, nil
}

// Start returns the series start date, the clamped start of interval 0.
func (c *Cycler) Start() time.Time { return c.start }

// End returns the series end date, the clamped end of the last interval.
func (c *Cycler) End() time.Time { return c.end }

// CycleSet returns the canonical annual template in use.
func (c *Cycler) CycleSet() *CycleSet { return c.cycles }

// AtFirstInterval reports whether the cursor is on interval 0.
func (c *Cycler) AtFirstInterval() bool { return c.pos == 0 }

// AtLastInterval reports whether the cursor is on the last interval.
func (c *Cycler) AtLastInterval() bool { return c.pos == c.size-1 }

// Index returns the current interval index. It fails with
// ErrCursorNotPositioned while the cursor sits at either sentinel.
func (c *Cycler) Index() (int, error) {
	if c.pos == posBeforeFirst || c.pos == c.size {
		return 0, ErrCursorNotPositioned
	}
	return c.pos, nil
}

// Interval returns the interval under the cursor. It fails with
// ErrCursorNotPositioned while the cursor sits at either sentinel.
func (c *Cycler) Interval() (Interval, error) {
	if c.pos == posBeforeFirst || c.pos == c.size {
		return Interval{}, ErrCursorNotPositioned
	}
	return c.intervalAt(c.pos), nil
}

// Next advances the cursor one interval: before-first moves to interval 0,
// the last interval moves to the after-last sentinel. Advancing from
// after-last fails with ErrStopSeries and leaves the cursor there.
func (c *Cycler) Next() error {
	if c.pos == c.size {
		return fmt.Errorf("%w: cursor already after the last interval", ErrStopSeries)
	}
	c.pos++
	c.metrics.RecordStep("next")
	return nil
}

// Back moves the cursor back one interval; the mirror of Next, terminal at
// the before-first sentinel.
func (c *Cycler) Back() error {
	if c.pos == posBeforeFirst {
		return fmt.Errorf("%w: cursor already before the first interval", ErrStopSeries)
	}
	c.pos--
	c.metrics.RecordStep("back")
	return nil
}

// NextGet advances the cursor and returns the interval now under it.
// Stepping onto the after-last sentinel fails with ErrStopSeries.
func (c *Cycler) NextGet() (Interval, error) {
	if err := c.Next(); err != nil {
		return Interval{}, err
	}
	if c.pos == c.size {
		return Interval{}, fmt.Errorf("%w: cursor moved past the last interval", ErrStopSeries)
	}
	return c.intervalAt(c.pos), nil
}

// BackGet moves the cursor back and returns the interval now under it.
// Stepping onto the before-first sentinel fails with ErrStopSeries.
func (c *Cycler) BackGet() (Interval, error) {
	if err := c.Back(); err != nil {
		return Interval{}, err
	}
	if c.pos == posBeforeFirst {
		return Interval{}, fmt.Errorf("%w: cursor moved before the first interval", ErrStopSeries)
	}
	return c.intervalAt(c.pos), nil
}

// SeekToIndex positions the cursor on interval i. The cursor is unchanged
// on failure.
func (c *Cycler) SeekToIndex(i int) error {
	if i < 0 || i >= c.size {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, c.size)
	}
	c.pos = i
	c.logger.Debug("seek to index", Field{Key: "index", Value: i})
	return nil
}

// SeekToDate positions the cursor on the interval containing d. The cursor
// is unchanged on failure.
func (c *Cycler) SeekToDate(d time.Time) error {
	i, err := c.IndexFromDate(d)
	if err != nil {
		return err
	}
	c.pos = i
	c.logger.Debug("seek to date",
		Field{Key: "date", Value: startOfDayUTC(d).Format(dateLayout)},
		Field{Key: "index", Value: i},
	)
	return nil
}

// Reset returns the cursor to interval 0, or to the before-first sentinel
// when startBeforeFirst is set.
func (c *Cycler) Reset(startBeforeFirst bool) {
	c.startBeforeFirst = startBeforeFirst
	if startBeforeFirst {
		c.pos = posBeforeFirst
	} else {
		c.pos = 0
	}
}

// Intervals returns a lazy iterator over the remaining intervals. It shares
// the one cursor: each step is a NextGet, so iterating to exhaustion leaves
// the cursor at the after-last sentinel and the sequence is not
// independently restartable. Call Reset(true) first to range over the whole
// series.
func (c *Cycler) Intervals() iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		for {
			iv, err := c.NextGet()
			if err != nil {
				return
			}
			if !yield(iv) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the cycler. With reset the copy goes
// back to its initial cursor position, otherwise it keeps the current one.
func (c *Cycler) Clone(reset bool) *Cycler {
	clone := *c
	if reset {
		clone.Reset(c.startBeforeFirst)
	}
	return &clone
}

// String summarizes the series without materializing it.
func (c *Cycler) String() string {
	return fmt.Sprintf("Cycler(%d anchors, %d intervals, %s to %s)",
		c.cycles.Size(), c.size, c.start.Format(dateLayout), c.end.Format(dateLayout))
}
