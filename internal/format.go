package internal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// tokenAlternation matches any catalog token for the single substitution
// pass. The alternatives follow the catalog's length-descending order, so a
// longer token is never partially consumed by a shorter one.
var tokenAlternation = regexp.MustCompile(tokenAlternationPattern())

func tokenAlternationPattern() string {
	texts := make([]string, len(tokenCatalog))
	for i, def := range tokenCatalog {
		texts[i] = def.Text
	}
	return strings.Join(texts, "|")
}

// Format renders t through template for the locale tag. Template text that
// matches no token passes through unchanged; the operation never fails.
func Format(template string, t time.Time, localeTag string) string {
	loc := LookupLocale(localeTag)
	values := displayValues(t, loc)
	return tokenAlternation.ReplaceAllStringFunc(template, func(tok string) string {
		return values[tok]
	})
}

// displayValues decomposes t into one rendered value per catalog token.
func displayValues(t time.Time, loc *Locale) map[string]string {
	hour12 := t.Hour() % 12
	if hour12 == 0 {
		hour12 = 12
	}
	month := int(t.Month()) - 1
	weekday := int(t.Weekday())
	pm := t.Hour() >= 12
	return map[string]string{
		"YYYY": fmt.Sprintf("%04d", t.Year()),
		"YY":   fmt.Sprintf("%02d", t.Year()%100),
		"MMMM": loc.MonthName(month, StyleLong),
		"MMM":  loc.MonthName(month, StyleShort),
		"MM":   fmt.Sprintf("%02d", month+1),
		"M":    strconv.Itoa(month + 1),
		"DD":   fmt.Sprintf("%02d", t.Day()),
		"D":    strconv.Itoa(t.Day()),
		"dddd": loc.WeekdayName(weekday, StyleLong),
		"ddd":  loc.WeekdayName(weekday, StyleShort),
		"HH":   fmt.Sprintf("%02d", t.Hour()),
		"H":    strconv.Itoa(t.Hour()),
		"hh":   fmt.Sprintf("%02d", hour12),
		"h":    strconv.Itoa(hour12),
		"mm":   fmt.Sprintf("%02d", t.Minute()),
		"m":    strconv.Itoa(t.Minute()),
		"ss":   fmt.Sprintf("%02d", t.Second()),
		"s":    strconv.Itoa(t.Second()),
		"SSS":  fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond)),
		"A":    loc.MeridiemName(pm, false),
		"a":    loc.MeridiemName(pm, true),
	}
}
