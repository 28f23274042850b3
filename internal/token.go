package internal

import (
	"fmt"
	"strconv"
)

// FieldName identifies the calendar field a template token feeds.
type FieldName string

const (
	FieldYear        FieldName = "year"
	FieldMonth       FieldName = "month"
	FieldDay         FieldName = "day"
	FieldWeekday     FieldName = "weekday"
	FieldHour        FieldName = "hour"
	FieldHour12      FieldName = "hour12"
	FieldMinute      FieldName = "minute"
	FieldSecond      FieldName = "second"
	FieldMillisecond FieldName = "millisecond"
	FieldMeridiem    FieldName = "meridiem"
)

// NameStyle selects between the long and abbreviated rendering of a month or
// weekday name.
type NameStyle int

const (
	StyleLong  NameStyle = 0
	StyleShort NameStyle = 1
)

func (s NameStyle) String() string {
	switch s {
	case StyleLong:
		return "long"
	case StyleShort:
		return "short"
	}
	return "unknown"
}

// TokenDef describes one template token: its literal text, the field it
// feeds, the pattern fragment it matches during parsing and the resolver
// that stores a captured substring into a FieldRecord.
type TokenDef struct {
	Text     string
	Field    FieldName
	Fragment func(loc *Locale) string
	Resolve  func(raw string, loc *Locale, rec *FieldRecord) error
}

// tokenCatalog is the closed token vocabulary. The slice is ordered by token
// text length, descending; both template scanning and formatter substitution
// rely on that order so a longer token is never partially claimed by a
// shorter one sharing a prefix.
var tokenCatalog = []*TokenDef{
	{Text: "YYYY", Field: FieldYear, Fragment: fourDigitFragment, Resolve: yearResolver},
	{Text: "MMMM", Field: FieldMonth, Fragment: monthNameFragment, Resolve: monthNameResolver},
	{Text: "dddd", Field: FieldWeekday, Fragment: weekdayNameFragment, Resolve: weekdayNameResolver},
	{Text: "MMM", Field: FieldMonth, Fragment: monthAbbrevFragment, Resolve: monthAbbrevResolver},
	{Text: "ddd", Field: FieldWeekday, Fragment: weekdayAbbrevFragment, Resolve: weekdayAbbrevResolver},
	{Text: "SSS", Field: FieldMillisecond, Fragment: threeDigitFragment, Resolve: millisecondResolver},
	{Text: "YY", Field: FieldYear, Fragment: twoDigitFragment, Resolve: shortYearResolver},
	{Text: "MM", Field: FieldMonth, Fragment: twoDigitFragment, Resolve: monthResolver},
	{Text: "DD", Field: FieldDay, Fragment: twoDigitFragment, Resolve: dayResolver},
	{Text: "HH", Field: FieldHour, Fragment: twoDigitFragment, Resolve: hourResolver},
	{Text: "hh", Field: FieldHour12, Fragment: twoDigitFragment, Resolve: hour12Resolver},
	{Text: "mm", Field: FieldMinute, Fragment: twoDigitFragment, Resolve: minuteResolver},
	{Text: "ss", Field: FieldSecond, Fragment: twoDigitFragment, Resolve: secondResolver},
	{Text: "M", Field: FieldMonth, Fragment: flexibleDigitFragment, Resolve: monthResolver},
	{Text: "D", Field: FieldDay, Fragment: flexibleDigitFragment, Resolve: dayResolver},
	{Text: "H", Field: FieldHour, Fragment: flexibleDigitFragment, Resolve: hourResolver},
	{Text: "h", Field: FieldHour12, Fragment: flexibleDigitFragment, Resolve: hour12Resolver},
	{Text: "m", Field: FieldMinute, Fragment: flexibleDigitFragment, Resolve: minuteResolver},
	{Text: "s", Field: FieldSecond, Fragment: flexibleDigitFragment, Resolve: secondResolver},
	{Text: "A", Field: FieldMeridiem, Fragment: meridiemFragment, Resolve: meridiemResolver},
	{Text: "a", Field: FieldMeridiem, Fragment: meridiemFragment, Resolve: meridiemResolver},
}

// Catalog returns the token vocabulary in scan order.
func Catalog() []*TokenDef {
	return append([]*TokenDef(nil), tokenCatalog...)
}

func fourDigitFragment(_ *Locale) string     { return `\d{4}` }
func threeDigitFragment(_ *Locale) string    { return `\d{3}` }
func twoDigitFragment(_ *Locale) string      { return `\d{2}` }
func flexibleDigitFragment(_ *Locale) string { return `\d{1,2}` }

func monthNameFragment(loc *Locale) string     { return loc.monthPattern(StyleLong) }
func monthAbbrevFragment(loc *Locale) string   { return loc.monthPattern(StyleShort) }
func weekdayNameFragment(loc *Locale) string   { return loc.weekdayPattern(StyleLong) }
func weekdayAbbrevFragment(loc *Locale) string { return loc.weekdayPattern(StyleShort) }
func meridiemFragment(loc *Locale) string      { return loc.meridiemPattern() }

func parseDecimal(field FieldName, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("could not parse %s number: %s", field, err)
	}
	return v, nil
}

func yearResolver(raw string, _ *Locale, rec *FieldRecord) error {
	v, err := parseDecimal(FieldYear, raw)
	if err != nil {
		return err
	}
	rec.Year = v
	return nil
}

// shortYearResolver maps a two digit year into the 2000s.
func shortYearResolver(raw string, _ *Locale, rec *FieldRecord) error {
	v, err := parseDecimal(FieldYear, raw)
	if err != nil {
		return err
	}
	rec.Year = v + 2000
	return nil
}

// monthResolver stores a one-based month number as a zero-based index.
func monthResolver(raw string, _ *Locale, rec *FieldRecord) error {
	v, err := parseDecimal(FieldMonth, raw)
	if err != nil {
		return err
	}
	rec.Month = v - 1
	return nil
}

func dayResolver(raw string, _ *Locale, rec *FieldRecord) error {
	v, err := parseDecimal(FieldDay, raw)
	if err != nil {
		return err
	}
	rec.Day = v
	return nil
}

func hourResolver(raw string, _ *Locale, rec *FieldRecord) error {
	v, err := parseDecimal(FieldHour, raw)
	if err != nil {
		return err
	}
	rec.Hour = v
	return nil
}

func hour12Resolver(raw string, _ *Locale, rec *FieldRecord) error {
	v, err := parseDecimal(FieldHour12, raw)
	if err != nil {
		return err
	}
	rec.Hour12 = v
	rec.HasHour12 = true
	return nil
}

func minuteResolver(raw string, _ *Locale, rec *FieldRecord) error {
	v, err := parseDecimal(FieldMinute, raw)
	if err != nil {
		return err
	}
	rec.Minute = v
	return nil
}

func secondResolver(raw string, _ *Locale, rec *FieldRecord) error {
	v, err := parseDecimal(FieldSecond, raw)
	if err != nil {
		return err
	}
	rec.Second = v
	return nil
}

func millisecondResolver(raw string, _ *Locale, rec *FieldRecord) error {
	v, err := parseDecimal(FieldMillisecond, raw)
	if err != nil {
		return err
	}
	rec.Millisecond = v
	return nil
}

func monthNameResolver(raw string, loc *Locale, rec *FieldRecord) error {
	rec.Month = loc.monthIndex(raw, StyleLong)
	return nil
}

func monthAbbrevResolver(raw string, loc *Locale, rec *FieldRecord) error {
	rec.Month = loc.monthIndex(raw, StyleShort)
	return nil
}

func weekdayNameResolver(raw string, loc *Locale, rec *FieldRecord) error {
	rec.Weekday = loc.weekdayIndex(raw, StyleLong)
	rec.HasWeekday = true
	return nil
}

func weekdayAbbrevResolver(raw string, loc *Locale, rec *FieldRecord) error {
	rec.Weekday = loc.weekdayIndex(raw, StyleShort)
	rec.HasWeekday = true
	return nil
}

func meridiemResolver(raw string, loc *Locale, rec *FieldRecord) error {
	rec.Meridiem = loc.meridiem(raw)
	return nil
}
