package internal

import (
	"time"
)

// Meridiem is the tri-state AM/PM indicator recovered during resolution.
type Meridiem int

const (
	MeridiemUnset Meridiem = 0
	MeridiemAM    Meridiem = 1
	MeridiemPM    Meridiem = 2
)

func (m Meridiem) String() string {
	switch m {
	case MeridiemAM:
		return "AM"
	case MeridiemPM:
		return "PM"
	}
	return "unset"
}

// FieldRecord is the working calendar-field state a parse resolves into.
// Month is zero-based. Weekday is informational only and never drives
// assembly.
type FieldRecord struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Hour12      int
	HasHour12   bool
	Minute      int
	Second      int
	Millisecond int
	Meridiem    Meridiem
	Weekday     int
	HasWeekday  bool
}

// timeNow is swapped out by tests that pin the default year.
var timeNow = time.Now

// NewFieldRecord returns a record primed with the resolution defaults: the
// current year, January, the first day of the month, all time fields zero,
// meridiem unset.
func NewFieldRecord() *FieldRecord {
	return &FieldRecord{
		Year: timeNow().Year(),
		Day:  1,
	}
}

// ResolveFields applies each located token's resolver to its captured
// substring, in template order.
func ResolveFields(located []*LocatedToken, captured []string, loc *Locale) (*FieldRecord, error) {
	rec := NewFieldRecord()
	for i, lt := range located {
		if err := lt.Token.Resolve(captured[i], loc, rec); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// Instant composes the record into a concrete instant in tz. A captured
// 12-hour value takes effect over the 24-hour field: 12 AM maps to hour 0
// and a PM value other than 12 gains twelve hours; without a meridiem the
// 12-hour value passes through as captured.
func (r *FieldRecord) Instant(tz *time.Location) time.Time {
	hour := r.Hour
	if r.HasHour12 {
		hour = r.Hour12
		switch {
		case r.Meridiem == MeridiemAM && hour == 12:
			hour = 0
		case r.Meridiem == MeridiemPM && hour != 12:
			hour += 12
		}
	}
	return time.Date(r.Year, time.Month(r.Month+1), r.Day, hour, r.Minute, r.Second, r.Millisecond*int(time.Millisecond), tz)
}

// ParseFields matches text against template for the locale tag and resolves
// the captured substrings into a calendar-field record.
func ParseFields(template, text, localeTag string) (*FieldRecord, error) {
	loc := LookupLocale(localeTag)
	compiled, err := CompileTemplate(template, loc)
	if err != nil {
		return nil, err
	}
	captured, err := compiled.Match(text)
	if err != nil {
		return nil, err
	}
	return ResolveFields(compiled.Tokens(), captured, loc)
}

// Parse recovers an instant from text under template for the locale tag,
// composing the result in tz. The text must match the template in full; on
// failure the zero instant is returned with an error wrapping ErrNoMatch.
func Parse(template, text, localeTag string, tz *time.Location) (time.Time, error) {
	rec, err := ParseFields(template, text, localeTag)
	if err != nil {
		return time.Time{}, err
	}
	return rec.Instant(tz), nil
}
