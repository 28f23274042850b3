package main

import (
	"io"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	prev := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = prev }()
	fnErr := fn()
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(out), fnErr
}

func TestRunOnceFormat(t *testing.T) {
	out, err := captureStdout(t, func() error {
		return runOnce(option{Format: "dddd, MMMM D, YYYY", At: "2024-06-15T13:45:30Z"})
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out); got != "Saturday, June 15, 2024" {
		t.Fatalf("unexpected output: expected [Saturday, June 15, 2024] but got [%s]", got)
	}
}

func TestRunOnceFormatInLocale(t *testing.T) {
	out, err := captureStdout(t, func() error {
		return runOnce(option{Format: "dddd", At: "2024-06-15T00:00:00Z", Locale: "de-DE"})
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out); got != "Samstag" {
		t.Fatalf("unexpected output: expected [Samstag] but got [%s]", got)
	}
}

func TestRunOnceParse(t *testing.T) {
	out, err := captureStdout(t, func() error {
		return runOnce(option{Parse: "YYYY-MM-DD HH:mm:ss", Text: "2024-06-15 13:45:30"})
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out); got != "2024-06-15T13:45:30Z" {
		t.Fatalf("unexpected output: expected [2024-06-15T13:45:30Z] but got [%s]", got)
	}
}

func TestRunOnceErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		opt  option
	}{
		{name: "format and parse are exclusive", opt: option{Format: "YYYY", Parse: "YYYY"}},
		{name: "parse requires text", opt: option{Parse: "YYYY"}},
		{name: "malformed at", opt: option{Format: "YYYY", At: "not-an-instant"}},
		{name: "text does not match template", opt: option{Parse: "YYYY-MM-DD", Text: "junk"}},
	} {
		t.Run(test.name, func(t *testing.T) {
			out, err := captureStdout(t, func() error { return runOnce(test.opt) })
			if err == nil {
				t.Fatalf("expected an error but got output [%s]", out)
			}
		})
	}
}

func TestRunCommandVersion(t *testing.T) {
	out, err := captureStdout(t, func() error {
		return runCommand(nil, option{Version: true})
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "version:") {
		t.Fatalf("unexpected output: [%s]", out)
	}
}
