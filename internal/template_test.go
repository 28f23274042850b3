package internal

import (
	"errors"
	"testing"

	"github.com/WillZhangFly/one-second/types"
)

func TestLocateTokens(t *testing.T) {
	type located struct {
		position int
		text     string
	}
	for _, test := range []struct {
		name     string
		template string
		expected []located
	}{
		{
			name:     "date template",
			template: "YYYY-MM-DD",
			expected: []located{{0, "YYYY"}, {5, "MM"}, {8, "DD"}},
		},
		{
			name:     "longer token claims its span first",
			template: "YYYYYY",
			expected: []located{{0, "YYYY"}, {4, "YY"}},
		},
		{
			name:     "adjacent day tokens",
			template: "DDD",
			expected: []located{{0, "DD"}, {2, "D"}},
		},
		{
			name:     "name and abbreviation tokens",
			template: "MMMM MMM",
			expected: []located{{0, "MMMM"}, {5, "MMM"}},
		},
		{
			name:     "repeated occurrences found once each",
			template: "DD/DD",
			expected: []located{{0, "DD"}, {3, "DD"}},
		},
		{
			name:     "time with meridiem",
			template: "hh:mm A",
			expected: []located{{0, "hh"}, {3, "mm"}, {6, "A"}},
		},
		{
			name:     "case distinguishes tokens",
			template: "M/m",
			expected: []located{{0, "M"}, {2, "m"}},
		},
		{
			name:     "no tokens",
			template: "2024+06",
			expected: nil,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := locateTokens(test.template)
			if len(got) != len(test.expected) {
				t.Fatalf("unexpected token count: expected [%d] but got [%d]", len(test.expected), len(got))
			}
			for i, lt := range got {
				if lt.Position != test.expected[i].position {
					t.Fatalf("unexpected position at %d: expected [%d] but got [%d]", i, test.expected[i].position, lt.Position)
				}
				if lt.Token.Text != test.expected[i].text {
					t.Fatalf("unexpected token at %d: expected [%s] but got [%s]", i, test.expected[i].text, lt.Token.Text)
				}
			}
		})
	}
}

func TestCompileTemplateCache(t *testing.T) {
	loc := LookupLocale("en-US")
	first, err := CompileTemplate("YYYY-MM-DD", loc)
	if err != nil {
		t.Fatal(err)
	}
	second, err := CompileTemplate("YYYY-MM-DD", loc)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("expected cached instance but got a fresh compile")
	}
	other, err := CompileTemplate("YYYY-MM-DD", LookupLocale("de-DE"))
	if err != nil {
		t.Fatal(err)
	}
	if other == first {
		t.Fatalf("expected a distinct compile per locale")
	}
}

func TestCompiledTemplateMatch(t *testing.T) {
	for _, test := range []struct {
		name      string
		template  string
		text      string
		locale    string
		expected  []string
		expectErr bool
	}{
		{
			name:     "numeric date",
			template: "YYYY-MM-DD",
			text:     "2024-06-15",
			expected: []string{"2024", "06", "15"},
		},
		{
			name:     "name month with literal comma",
			template: "MMMM D, YYYY",
			text:     "January 15, 2024",
			expected: []string{"January", "15", "2024"},
		},
		{
			name:     "input case differs from name data",
			template: "MMMM",
			text:     "jAnUaRy",
			expected: []string{"jAnUaRy"},
		},
		{
			name:     "dot literals stay literal",
			template: "YYYY.MM.DD",
			text:     "2024.06.15",
			expected: []string{"2024", "06", "15"},
		},
		{
			name:      "dot literal does not match a dash",
			template:  "YYYY.MM.DD",
			text:      "2024-06-15",
			expectErr: true,
		},
		{
			name:     "parenthesis literals",
			template: "(YYYY)",
			text:     "(2024)",
			expected: []string{"2024"},
		},
		{
			name:     "empty template matches empty text",
			template: "",
			text:     "",
			expected: []string{},
		},
		{
			name:      "empty template rejects text",
			template:  "",
			text:      "x",
			expectErr: true,
		},
		{
			name:     "tokenless template is literal equality",
			template: "2024-06-15",
			text:     "2024-06-15",
			expected: []string{},
		},
		{
			name:      "partial match is rejected",
			template:  "YYYY",
			text:      "2024-06",
			expectErr: true,
		},
		{
			name:      "garbage input",
			template:  "YYYY-MM-DD",
			text:      "not-a-date",
			expectErr: true,
		},
		{
			name:     "localized name fragment",
			template: "D. MMMM",
			text:     "15. März",
			locale:   "de-DE",
			expected: []string{"15", "März"},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			tag := test.locale
			if tag == "" {
				tag = "en-US"
			}
			compiled, err := CompileTemplate(test.template, LookupLocale(tag))
			if err != nil {
				t.Fatal(err)
			}
			captured, err := compiled.Match(test.text)
			if test.expectErr {
				if err == nil {
					t.Fatalf("expected error but got captures %v", captured)
				}
				if !errors.Is(err, ErrNoMatch) {
					t.Fatalf("unexpected error type: expected ErrNoMatch but got [%s]", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(captured) != len(test.expected) {
				t.Fatalf("unexpected capture count: expected [%d] but got [%d]", len(test.expected), len(captured))
			}
			for i, got := range captured {
				if got != test.expected[i] {
					t.Fatalf("unexpected capture at %d: expected [%s] but got [%s]", i, test.expected[i], got)
				}
			}
		})
	}
}

func TestLongNamePreferredOverPrefix(t *testing.T) {
	// Czech June ("červen") is a prefix of July ("červenec"). The name
	// alternation orders alternatives longest-first, so the full July name
	// must be captured whole, not cut at the June prefix.
	if err := RegisterLocale(types.LocaleData{
		ID: "cs",
		Months: []string{
			"leden", "únor", "březen", "duben", "květen", "červen",
			"červenec", "srpen", "září", "říjen", "listopad", "prosinec",
		},
		MonthsShort: []string{
			"led", "úno", "bře", "dub", "kvě", "čvn",
			"čvc", "srp", "zář", "říj", "lis", "pro",
		},
		Weekdays: []string{
			"neděle", "pondělí", "úterý", "středa", "čtvrtek", "pátek", "sobota",
		},
		WeekdaysShort: []string{
			"ne", "po", "út", "st", "čt", "pá", "so",
		},
	}); err != nil {
		t.Fatal(err)
	}

	compiled, err := CompileTemplate("MMMM YYYY", LookupLocale("cs"))
	if err != nil {
		t.Fatal(err)
	}
	captured, err := compiled.Match("červenec 2024")
	if err != nil {
		t.Fatal(err)
	}
	if captured[0] != "červenec" {
		t.Fatalf("unexpected month capture: expected [červenec] but got [%s]", captured[0])
	}

	rec, err := ParseFields("MMMM YYYY", "červenec 2024", "cs")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Month != 6 {
		t.Fatalf("unexpected month index: expected [6] but got [%d]", rec.Month)
	}
}
