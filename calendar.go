package onesecond

import (
	"time"

	"github.com/WillZhangFly/one-second/internal"
	"github.com/WillZhangFly/one-second/types"
)

// StartOf truncates t to the beginning of the unit containing it. Weeks
// start on Sunday.
func StartOf(t time.Time, unit types.Unit) time.Time {
	return internal.StartOf(t, unit)
}

// EndOf returns the last representable millisecond of the unit containing
// t.
func EndOf(t time.Time, unit types.Unit) time.Time {
	return internal.EndOf(t, unit)
}

// Same reports whether a and b fall inside the same unit.
func Same(a, b time.Time, unit types.Unit) bool {
	return internal.Same(a, b, unit)
}

// Diff counts the unit boundaries crossed going from a to b. The count is
// negative when b precedes a.
func Diff(a, b time.Time, unit types.Unit) int64 {
	return internal.Diff(a, b, unit)
}

// Sequence returns the instants stepping one unit at a time from from up
// to and including to.
func Sequence(from, to time.Time, unit types.Unit) []time.Time {
	return internal.Sequence(from, to, unit)
}
