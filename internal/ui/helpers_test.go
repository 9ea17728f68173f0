package ui

import (
	"strings"
	"testing"
	"time"
)

func TestHumanizeDuration(t *testing.T) {
	cases := []struct {
		name string
		in   int64 // seconds
		want string
	}{
		{"negative", -5, "now"},
		{"subsecond", 0, "now"},
		{"seconds", 12, "12s"},
		{"minutes", 61, "1m"},
		{"hours_only", 2*60*60 + 10, "2h"},
		{"hours_minutes", 2*60*60 + 3*60, "2h 3m"},
		{"days", 24 * 60 * 60, "1d"},
		{"days_hours", 26 * 60 * 60, "1d 2h"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := humanizeDuration(timeSeconds(tc.in))
			if got != tc.want {
				t.Fatalf("humanizeDuration(%d) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	var m Model
	if got := m.formatTimestamp(); got != "never loaded" {
		t.Fatalf("zero time = %q, want never loaded", got)
	}

	m.lastUpdated = time.Now().Add(-90 * time.Second)
	if got := m.formatTimestamp(); !strings.HasSuffix(got, "(1m ago)") {
		t.Fatalf("formatTimestamp = %q, want suffix (1m ago)", got)
	}
}

func TestAPIHost(t *testing.T) {
	if got := apiHost("http://dummy.restapiexample.com/api/v1/"); got != "dummy.restapiexample.com" {
		t.Fatalf("apiHost = %q", got)
	}
	if got := apiHost("not a url"); got != "not a url" {
		t.Fatalf("apiHost fallback = %q", got)
	}
}

func timeSeconds(sec int64) time.Duration {
	return time.Duration(sec) * time.Second
}
