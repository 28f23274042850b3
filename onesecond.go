package onesecond

import (
	"time"

	"github.com/WillZhangFly/one-second/internal"
	"github.com/WillZhangFly/one-second/types"
)

// DefaultLocale is the locale Format and Parse use when none is given.
const DefaultLocale = internal.DefaultLocale

// ErrNoMatch reports that an input text does not conform to its template.
// Parse failures wrap it; detect it with errors.Is.
var ErrNoMatch = internal.ErrNoMatch

// Format renders t through a token template in the default locale. Template
// text that matches no token passes through unchanged; Format never fails.
func Format(template string, t time.Time) string {
	return internal.Format(template, t, DefaultLocale)
}

// FormatInLocale renders t through a token template with the given locale's
// name tables. An unresolvable locale tag degrades to the default locale.
func FormatInLocale(template string, t time.Time, locale string) string {
	return internal.Format(template, t, locale)
}

// Parse recovers an instant from text under template in the default locale.
// The text must match the template in full; on failure Parse returns the
// zero instant and an error wrapping ErrNoMatch. Fields the template does
// not express default to the current year, January the 1st and zero time
// fields. The instant is composed in UTC.
func Parse(template, text string) (time.Time, error) {
	return internal.Parse(template, text, DefaultLocale, time.UTC)
}

// ParseInLocale is Parse with a specific locale's name tables.
func ParseInLocale(template, text, locale string) (time.Time, error) {
	return internal.Parse(template, text, locale, time.UTC)
}

// ParseInLocation is ParseInLocale composing the instant in loc instead of
// UTC.
func ParseInLocation(template, text, locale string, loc *time.Location) (time.Time, error) {
	return internal.Parse(template, text, locale, loc)
}

// RegisterLocale validates and installs name data for a locale, replacing
// any earlier registration of the same tag.
func RegisterLocale(data types.LocaleData) error {
	return internal.RegisterLocale(data)
}

// Locales returns the canonical tags of every registered locale.
func Locales() []string {
	return internal.Locales()
}
