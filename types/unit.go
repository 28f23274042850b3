package types

import (
	"strings"
	"time"
)

// Unit is a calendar granularity accepted by the boundary, comparison,
// difference and sequence operations.
type Unit string

const (
	Year        Unit = "year"
	Month       Unit = "month"
	Week        Unit = "week"
	Day         Unit = "day"
	Hour        Unit = "hour"
	Minute      Unit = "minute"
	Second      Unit = "second"
	Millisecond Unit = "millisecond"
)

// NormalizeUnit maps a user supplied unit name to its canonical Unit.
// Matching is case-insensitive and accepts plural forms. Unknown names
// map to the empty Unit.
func NormalizeUnit(s string) Unit {
	u := Unit(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s"))
	switch u {
	case Year, Month, Week, Day, Hour, Minute, Second, Millisecond:
		return u
	}
	return ""
}

// Duration returns the fixed span of the unit. Year and Month vary with the
// calendar and return zero.
func (u Unit) Duration() time.Duration {
	switch u {
	case Week:
		return 7 * 24 * time.Hour
	case Day:
		return 24 * time.Hour
	case Hour:
		return time.Hour
	case Minute:
		return time.Minute
	case Second:
		return time.Second
	case Millisecond:
		return time.Millisecond
	}
	return 0
}
