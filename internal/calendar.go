package internal

import (
	"time"

	"github.com/WillZhangFly/one-second/types"
)

// StartOf truncates t to the beginning of the unit containing it. Weeks
// start on the first day of the reference week. Unit spellings are
// normalized; an unknown unit returns t unchanged.
func StartOf(t time.Time, unit types.Unit) time.Time {
	switch types.NormalizeUnit(string(unit)) {
	case types.Year:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	case types.Month:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case types.Week:
		day := StartOf(t, types.Day)
		return day.AddDate(0, 0, -int(day.Weekday()))
	case types.Day:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	case types.Hour:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	case types.Minute:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
	case types.Second:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, t.Location())
	case types.Millisecond:
		return t.Truncate(time.Millisecond)
	}
	return t
}

// EndOf returns the last representable millisecond of the unit containing t.
func EndOf(t time.Time, unit types.Unit) time.Time {
	return AddUnit(StartOf(t, unit), unit, 1).Add(-time.Millisecond)
}

// AddUnit advances t by n whole units. Calendar units go through AddDate,
// which normalizes month and day overflow. An unknown unit returns t
// unchanged.
func AddUnit(t time.Time, unit types.Unit, n int) time.Time {
	unit = types.NormalizeUnit(string(unit))
	switch unit {
	case types.Year:
		return t.AddDate(n, 0, 0)
	case types.Month:
		return t.AddDate(0, n, 0)
	case types.Week:
		return t.AddDate(0, 0, 7*n)
	case types.Day:
		return t.AddDate(0, 0, n)
	}
	return t.Add(time.Duration(n) * unit.Duration())
}

// Same reports whether a and b fall inside the same unit.
func Same(a, b time.Time, unit types.Unit) bool {
	return StartOf(a, unit).Equal(StartOf(b, unit))
}

// Diff counts the unit boundaries crossed going from a to b. The count is
// negative when b precedes a. Day and week boundaries are counted on the
// calendar, so a daylight saving shift does not shorten a day out of the
// count.
func Diff(a, b time.Time, unit types.Unit) int64 {
	unit = types.NormalizeUnit(string(unit))
	switch unit {
	case types.Year:
		return int64(b.Year() - a.Year())
	case types.Month:
		return int64(b.Year()-a.Year())*12 + int64(b.Month()) - int64(a.Month())
	case types.Week, types.Day:
		from := calendarDate(StartOf(a, unit))
		to := calendarDate(StartOf(b, unit))
		days := int64(to.Sub(from) / (24 * time.Hour))
		if unit == types.Week {
			return days / 7
		}
		return days
	}
	d := unit.Duration()
	if d == 0 {
		return 0
	}
	return int64(StartOf(b, unit).Sub(StartOf(a, unit)) / d)
}

// calendarDate re-expresses t's calendar date as a UTC midnight, making
// date subtraction an exact multiple of 24 hours in any location.
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Sequence returns the instants stepping one unit at a time from from up to
// and including to. An unknown unit, or a to before from, yields nil.
func Sequence(from, to time.Time, unit types.Unit) []time.Time {
	unit = types.NormalizeUnit(string(unit))
	if unit == "" {
		return nil
	}
	var seq []time.Time
	for t := from; !t.After(to); t = AddUnit(t, unit, 1) {
		seq = append(seq, t)
	}
	return seq
}
