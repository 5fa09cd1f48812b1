package cycler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyAnchors(t *testing.T) {
	anchors := MonthlyAnchors()
	require.Len(t, anchors, 12)
	for i, a := range anchors {
		assert.Equal(t, time.Month(i+1), a.Month)
		assert.Equal(t, 1, a.Day)
	}
}

func TestMonthEndAnchors(t *testing.T) {
	anchors := MonthEndAnchors()
	require.Len(t, anchors, 12)
	assert.Contains(t, anchors, Anchor{Month: time.February, Day: 29})
	assert.Contains(t, anchors, Anchor{Month: time.April, Day: 30})
	assert.Contains(t, anchors, Anchor{Month: time.December, Day: 31})
}

func TestDailyAnchors(t *testing.T) {
	anchors := DailyAnchors()
	require.Len(t, anchors, 366)

	// canonicalization drops Feb 29 since Feb 28 is present
	cs, err := NewCycleSet(anchors)
	require.NoError(t, err)
	assert.Equal(t, 365, cs.Size())
}

func TestNewMonthly(t *testing.T) {
	c, err := NewMonthly(d(2000, time.January, 15), d(2002, time.February, 10), Config{})
	require.NoError(t, err)

	first, err := c.IndexToInterval(0)
	require.NoError(t, err)
	assert.Equal(t, d(2000, time.January, 15), first.Start)
	assert.Equal(t, d(2000, time.February, 1), first.End)

	last, err := c.IndexToInterval(c.Size() - 1)
	require.NoError(t, err)
	assert.Equal(t, d(2002, time.February, 10), last.End)
}

func TestNewMonthlyEnd(t *testing.T) {
	c, err := NewMonthlyEnd(d(2023, time.December, 31), d(2024, time.March, 31), Config{})
	require.NoError(t, err)

	// leap February resolves to the true month end
	iv, err := c.IndexToInterval(1)
	require.NoError(t, err)
	assert.Equal(t, d(2024, time.January, 31), iv.Start)
	assert.Equal(t, d(2024, time.February, 29), iv.End)
}

func TestNewDaily(t *testing.T) {
	c, err := NewDaily(d(2023, time.March, 1), d(2023, time.March, 11), Config{})
	require.NoError(t, err)
	assert.Equal(t, 10, c.Size())

	for i := 0; i < c.Size(); i++ {
		iv, err := c.IndexToInterval(i)
		require.NoError(t, err)
		assert.Equal(t, 1, iv.Days())
	}
}

func TestNewFromYears(t *testing.T) {
	c, err := NewFromYears(quarterlyAnchors(), 2000, 0, 2001, 0, Config{})
	require.NoError(t, err)

	assert.Equal(t, d(2000, time.January, 1), c.Start())
	assert.Equal(t, d(2001, time.January, 1), c.End())
	assert.Equal(t, 4, c.Size())
}

func TestNewFromYears_BadPosition(t *testing.T) {
	_, err := NewFromYears(quarterlyAnchors(), 2000, 4, 2001, 0, Config{})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = NewFromYears(quarterlyAnchors(), 2000, 0, 2001, -1, Config{})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
