package internal

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"github.com/WillZhangFly/one-second/types"
)

// DefaultLocale is the tag used when a caller supplies none, or one that
// cannot be resolved against the registered locales.
const DefaultLocale = "en-US"

// referenceYear anchors the synthetic dates the name lookup tables are built
// from. 2024-01-07 is a Sunday, so day i of the reference week carries
// weekday index i.
const referenceYear = 2024

func referenceMonthDate(i int) time.Time {
	return time.Date(referenceYear, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC)
}

func referenceWeekDate(i int) time.Time {
	return time.Date(referenceYear, time.January, 7+i, 0, 0, 0, 0, time.UTC)
}

// Locale holds one locale's rendered name data together with the lookup
// tables and pattern fragments derived from it. The derived members are
// built once on first use and kept for the process lifetime.
type Locale struct {
	tag       language.Tag
	months    [2][]string
	weekdays  [2][]string
	meridiems [2]string

	once            sync.Once
	monthIndexes    [2]map[string]int
	weekdayIndexes  [2]map[string]int
	monthPatterns   [2]string
	weekdayPatterns [2]string
	meridiemPat     string
}

func newLocale(data types.LocaleData) (*Locale, error) {
	tag, err := language.Parse(data.ID)
	if err != nil {
		return nil, fmt.Errorf("could not parse locale tag %q: %w", data.ID, err)
	}
	loc := &Locale{tag: tag}
	loc.months[StyleLong] = append([]string(nil), data.Months...)
	loc.months[StyleShort] = append([]string(nil), data.MonthsShort...)
	loc.weekdays[StyleLong] = append([]string(nil), data.Weekdays...)
	loc.weekdays[StyleShort] = append([]string(nil), data.WeekdaysShort...)
	if len(data.Meridiems) == 2 {
		loc.meridiems[0] = data.Meridiems[0]
		loc.meridiems[1] = data.Meridiems[1]
	} else {
		loc.meridiems[0] = "AM"
		loc.meridiems[1] = "PM"
	}
	return loc, nil
}

// Tag returns the canonical locale tag.
func (l *Locale) Tag() string {
	return l.tag.String()
}

// MonthName renders the name of a zero-based month index. Out-of-range
// indices render as the empty string.
func (l *Locale) MonthName(month int, style NameStyle) string {
	names := l.months[style]
	if month < 0 || month >= len(names) {
		return ""
	}
	return names[month]
}

// WeekdayName renders the name of a weekday index, with 0 carrying the first
// day of the reference week.
func (l *Locale) WeekdayName(weekday int, style NameStyle) string {
	names := l.weekdays[style]
	if weekday < 0 || weekday >= len(names) {
		return ""
	}
	return names[weekday]
}

// MeridiemName renders the AM or PM marker. lower selects the lowercase
// form.
func (l *Locale) MeridiemName(pm, lower bool) string {
	name := l.meridiems[0]
	if pm {
		name = l.meridiems[1]
	}
	if lower {
		return strings.ToLower(name)
	}
	return name
}

// MonthNames returns the rendered month names, January first.
func (l *Locale) MonthNames(style NameStyle) []string {
	return append([]string(nil), l.months[style]...)
}

// WeekdayNames returns the rendered weekday names, Sunday first.
func (l *Locale) WeekdayNames(style NameStyle) []string {
	return append([]string(nil), l.weekdays[style]...)
}

// MeridiemNames returns the AM marker followed by the PM marker.
func (l *Locale) MeridiemNames() []string {
	return []string{l.meridiems[0], l.meridiems[1]}
}

// ensureTables builds the name lookup tables and pattern fragments by
// rendering the synthetic reference month and week through the name
// renderers. A table is never rebuilt once built.
func (l *Locale) ensureTables() {
	l.once.Do(func() {
		for _, style := range []NameStyle{StyleLong, StyleShort} {
			monthTable := make(map[string]int, 12)
			for i := 0; i < 12; i++ {
				m := int(referenceMonthDate(i).Month()) - 1
				monthTable[strings.ToLower(l.MonthName(m, style))] = m
			}
			l.monthIndexes[style] = monthTable

			weekdayTable := make(map[string]int, 7)
			for i := 0; i < 7; i++ {
				d := int(referenceWeekDate(i).Weekday())
				weekdayTable[strings.ToLower(l.WeekdayName(d, style))] = d
			}
			l.weekdayIndexes[style] = weekdayTable

			l.monthPatterns[style] = alternation(l.months[style])
			l.weekdayPatterns[style] = alternation(l.weekdays[style])
		}
		l.meridiemPat = alternation(l.meridiems[:])
	})
}

// monthIndex maps a captured month name to its zero-based index. Unknown
// names resolve to 0.
func (l *Locale) monthIndex(name string, style NameStyle) int {
	l.ensureTables()
	return l.monthIndexes[style][strings.ToLower(name)]
}

// weekdayIndex maps a captured weekday name to its index. Unknown names
// resolve to 0.
func (l *Locale) weekdayIndex(name string, style NameStyle) int {
	l.ensureTables()
	return l.weekdayIndexes[style][strings.ToLower(name)]
}

// meridiem interprets a captured meridiem marker. Anything other than the
// locale's PM marker resolves to AM.
func (l *Locale) meridiem(name string) Meridiem {
	if strings.EqualFold(name, l.meridiems[1]) {
		return MeridiemPM
	}
	return MeridiemAM
}

func (l *Locale) monthPattern(style NameStyle) string {
	l.ensureTables()
	return l.monthPatterns[style]
}

func (l *Locale) weekdayPattern(style NameStyle) string {
	l.ensureTables()
	return l.weekdayPatterns[style]
}

func (l *Locale) meridiemPattern() string {
	l.ensureTables()
	return l.meridiemPat
}

// alternation builds a pattern fragment matching any one of names. The
// alternatives are ordered longest-first so a name that is a prefix of
// another is never chosen too early, and every alternative is escaped.
func alternation(names []string) string {
	sorted := append([]string(nil), names...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	escaped := make([]string, len(sorted))
	for i, name := range sorted {
		escaped[i] = regexp.QuoteMeta(name)
	}
	return strings.Join(escaped, "|")
}

type localeRegistry struct {
	mu      sync.RWMutex
	tags    []language.Tag
	locales []*Locale
	byTag   map[string]*Locale
	matcher language.Matcher
}

var registry = &localeRegistry{byTag: map[string]*Locale{}}

// RegisterLocale validates and installs a locale's name data. Registering an
// already registered tag replaces the earlier data.
func RegisterLocale(data types.LocaleData) error {
	validate := validator.New()
	types.RegisterTypeValidation(validate)
	if err := validate.Struct(&data); err != nil {
		return fmt.Errorf("invalid locale data: %w", err)
	}
	loc, err := newLocale(data)
	if err != nil {
		return err
	}
	registry.add(loc)
	return nil
}

func (r *localeRegistry) add(loc *Locale) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tag := loc.Tag()
	if _, exists := r.byTag[tag]; exists {
		for i, known := range r.locales {
			if known.Tag() == tag {
				r.locales[i] = loc
				r.tags[i] = loc.tag
				break
			}
		}
	} else {
		r.locales = append(r.locales, loc)
		r.tags = append(r.tags, loc.tag)
	}
	r.byTag[tag] = loc
	r.matcher = language.NewMatcher(append([]language.Tag(nil), r.tags...))
	purgeCompiledTemplates(tag)
}

// LookupLocale resolves a locale tag to the closest registered locale. An
// empty, malformed or unmatched tag degrades to the default locale rather
// than failing.
func LookupLocale(tag string) *Locale {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	def := registry.byTag[DefaultLocale]
	if tag == "" {
		return def
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return def
	}
	if loc, ok := registry.byTag[parsed.String()]; ok {
		return loc
	}
	_, idx, conf := registry.matcher.Match(parsed)
	if conf == language.No {
		return def
	}
	return registry.locales[idx]
}

// Locales returns the canonical tags of every registered locale in
// registration order.
func Locales() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	tags := make([]string, len(registry.locales))
	for i, loc := range registry.locales {
		tags[i] = loc.Tag()
	}
	return tags
}
