package internal

import (
	"errors"
	"testing"
	"time"
)

func pinNow(t *testing.T, fixed time.Time) {
	t.Helper()
	prev := timeNow
	timeNow = func() time.Time { return fixed }
	t.Cleanup(func() { timeNow = prev })
}

func TestNewFieldRecordDefaults(t *testing.T) {
	pinNow(t, time.Date(2024, time.June, 1, 10, 30, 0, 0, time.UTC))
	rec := NewFieldRecord()
	expected := FieldRecord{Year: 2024, Day: 1}
	if *rec != expected {
		t.Fatalf("unexpected defaults: expected [%+v] but got [%+v]", expected, *rec)
	}
}

func TestParseFields(t *testing.T) {
	pinNow(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	for _, test := range []struct {
		name     string
		template string
		text     string
		locale   string
		expected FieldRecord
	}{
		{
			name:     "numeric date",
			template: "YYYY-MM-DD",
			text:     "2024-06-15",
			expected: FieldRecord{Year: 2024, Month: 5, Day: 15},
		},
		{
			name:     "long month name",
			template: "MMMM D, YYYY",
			text:     "January 15, 2024",
			expected: FieldRecord{Year: 2024, Month: 0, Day: 15},
		},
		{
			name:     "short month name and two digit year",
			template: "MMM D YY",
			text:     "Jun 5 24",
			expected: FieldRecord{Year: 2024, Month: 5, Day: 5},
		},
		{
			name:     "twelve hour clock with meridiem",
			template: "hh:mm A",
			text:     "01:30 PM",
			expected: FieldRecord{Year: 2024, Day: 1, Hour12: 1, HasHour12: true, Minute: 30, Meridiem: MeridiemPM},
		},
		{
			name:     "lowercase meridiem token",
			template: "h:mm a",
			text:     "9:05 am",
			expected: FieldRecord{Year: 2024, Day: 1, Hour12: 9, HasHour12: true, Minute: 5, Meridiem: MeridiemAM},
		},
		{
			name:     "twenty four hour clock with seconds and millis",
			template: "HH:mm:ss.SSS",
			text:     "23:59:58.123",
			expected: FieldRecord{Year: 2024, Day: 1, Hour: 23, Minute: 59, Second: 58, Millisecond: 123},
		},
		{
			name:     "weekday name is captured as a hint",
			template: "dddd, MMMM D",
			text:     "Monday, January 15",
			expected: FieldRecord{Year: 2024, Month: 0, Day: 15, Weekday: 1, HasWeekday: true},
		},
		{
			name:     "weekday abbreviation",
			template: "ddd D",
			text:     "Fri 21",
			expected: FieldRecord{Year: 2024, Day: 21, Weekday: 5, HasWeekday: true},
		},
		{
			name:     "name lookup ignores input case",
			template: "MMMM",
			text:     "JANUARY",
			expected: FieldRecord{Year: 2024, Day: 1},
		},
		{
			name:     "german month name",
			template: "DD. MMMM YYYY",
			text:     "15. März 2024",
			locale:   "de-DE",
			expected: FieldRecord{Year: 2024, Month: 2, Day: 15},
		},
		{
			name:     "french month name with accent",
			template: "D MMMM YYYY",
			text:     "15 août 2024",
			locale:   "fr-FR",
			expected: FieldRecord{Year: 2024, Month: 7, Day: 15},
		},
		{
			name:     "portuguese compound weekday",
			template: "dddd",
			text:     "segunda-feira",
			locale:   "pt-BR",
			expected: FieldRecord{Year: 2024, Day: 1, Weekday: 1, HasWeekday: true},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			tag := test.locale
			if tag == "" {
				tag = "en-US"
			}
			rec, err := ParseFields(test.template, test.text, tag)
			if err != nil {
				t.Fatal(err)
			}
			if *rec != test.expected {
				t.Fatalf("unexpected fields: expected [%+v] but got [%+v]", test.expected, *rec)
			}
		})
	}
}

func TestParseFieldsNoMatch(t *testing.T) {
	if _, err := ParseFields("YYYY-MM-DD", "not-a-date", "en-US"); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("unexpected error: expected ErrNoMatch but got [%v]", err)
	}
}

func TestInstant(t *testing.T) {
	for _, test := range []struct {
		name     string
		rec      FieldRecord
		expected time.Time
	}{
		{
			name:     "twenty four hour field",
			rec:      FieldRecord{Year: 2024, Month: 5, Day: 15, Hour: 13, Minute: 45, Second: 30},
			expected: time.Date(2024, time.June, 15, 13, 45, 30, 0, time.UTC),
		},
		{
			name:     "twelve am maps to midnight",
			rec:      FieldRecord{Year: 2024, Day: 1, Hour12: 12, HasHour12: true, Meridiem: MeridiemAM},
			expected: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "pm adds twelve",
			rec:      FieldRecord{Year: 2024, Day: 1, Hour12: 1, HasHour12: true, Minute: 30, Meridiem: MeridiemPM},
			expected: time.Date(2024, time.January, 1, 13, 30, 0, 0, time.UTC),
		},
		{
			name:     "twelve pm stays noon",
			rec:      FieldRecord{Year: 2024, Day: 1, Hour12: 12, HasHour12: true, Meridiem: MeridiemPM},
			expected: time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "am before noon is unchanged",
			rec:      FieldRecord{Year: 2024, Day: 1, Hour12: 9, HasHour12: true, Meridiem: MeridiemAM},
			expected: time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "twelve hour value without meridiem passes through",
			rec:      FieldRecord{Year: 2024, Day: 1, Hour12: 7, HasHour12: true},
			expected: time.Date(2024, time.January, 1, 7, 0, 0, 0, time.UTC),
		},
		{
			name:     "meridiem without twelve hour value is ignored",
			rec:      FieldRecord{Year: 2024, Day: 1, Hour: 15, Meridiem: MeridiemAM},
			expected: time.Date(2024, time.January, 1, 15, 0, 0, 0, time.UTC),
		},
		{
			name:     "weekday hint never drives assembly",
			rec:      FieldRecord{Year: 2024, Month: 0, Day: 15, Weekday: 4, HasWeekday: true},
			expected: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "milliseconds become nanoseconds",
			rec:      FieldRecord{Year: 2024, Day: 1, Millisecond: 250},
			expected: time.Date(2024, time.January, 1, 0, 0, 0, 250000000, time.UTC),
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := test.rec.Instant(time.UTC)
			if !got.Equal(test.expected) {
				t.Fatalf("unexpected instant: expected [%s] but got [%s]", test.expected, got)
			}
		})
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("YYYY-MM-DD HH:mm:ss", "2024-06-15 13:45:30", "en-US", time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	expected := time.Date(2024, time.June, 15, 13, 45, 30, 0, time.UTC)
	if !got.Equal(expected) {
		t.Fatalf("unexpected instant: expected [%s] but got [%s]", expected, got)
	}
}

func TestParseMidnight(t *testing.T) {
	pinNow(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	got, err := Parse("hh:mm A", "12:00 AM", "en-US", time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	if got.Hour() != 0 {
		t.Fatalf("unexpected hour: expected [0] but got [%d]", got.Hour())
	}
}

func TestParseNoMatchReturnsZeroInstant(t *testing.T) {
	got, err := Parse("YYYY-MM-DD", "not-a-date", "en-US", time.UTC)
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("unexpected error: expected ErrNoMatch but got [%v]", err)
	}
	if !got.IsZero() {
		t.Fatalf("unexpected instant: expected the zero instant but got [%s]", got)
	}
}

func TestParseInFixedZone(t *testing.T) {
	tz := time.FixedZone("UTC+9", 9*60*60)
	got, err := Parse("YYYY-MM-DD HH:mm", "2024-06-15 09:00", "en-US", tz)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected instant: expected 2024-06-15T00:00:00Z but got [%s]", got.UTC())
	}
}
