package cycler

import "time"

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of year.
func DaysInMonth(year int, month time.Month) int {
	// day 0 of month+1 is the last day of month
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateExists reports whether (month, day) is a real calendar date in year.
// For anchors validated by NewCycleSet this is false only for Feb 29 in
// non-leap years.
func DateExists(year int, month time.Month, day int) bool {
	return month >= time.January && month <= time.December &&
		day >= 1 && day <= DaysInMonth(year, month)
}

// newDate builds a UTC midnight date.
func newDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// startOfDayUTC strips any time-of-day component, normalizing to UTC midnight.
func startOfDayUTC(t time.Time) time.Time {
	tt := t.UTC()
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.UTC)
}
