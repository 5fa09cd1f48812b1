package cycler

import "errors"

var (
	// ErrInvalidAnchor is returned for a (month, day) pair that exists in no calendar year
	ErrInvalidAnchor = errors.New("invalid anchor date")

	// ErrInvalidBounds is returned when the series start is not strictly before its end
	ErrInvalidBounds = errors.New("start date must be before end date")

	// ErrEmptySeries is returned when construction yields a zero-interval series
	ErrEmptySeries = errors.New("series contains no intervals")

	// ErrIndexOutOfRange is returned for an interval index outside [0, Size())
	ErrIndexOutOfRange = errors.New("interval index out of range")

	// ErrDateOutOfRange is returned for a lookup date outside the series bounds
	ErrDateOutOfRange = errors.New("date out of series range")

	// ErrCursorNotPositioned is returned when reading the cursor at a sentinel position
	ErrCursorNotPositioned = errors.New("cursor is not positioned on an interval")

	// ErrStopSeries is returned when advancing past either end of the series
	ErrStopSeries = errors.New("no more intervals in series")
)
