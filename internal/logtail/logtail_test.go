package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "roster.INFO")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.INFO"), 5)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestRead_SpansChunks(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "roster.INFO")

	var content strings.Builder
	total := 0
	for content.Len() < 3*chunkSize {
		total++
		fmt.Fprintf(&content, "I1019 14:32:15.000001 1 poller.go:40] reload %06d %s\n", total, strings.Repeat("x", 80))
	}
	content.WriteString("no trailing newline")
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	got, err := Read(logPath, 3)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Read() returned %d lines, want 3", len(got))
	}
	if got[2] != "no trailing newline" {
		t.Fatalf("last line = %q", got[2])
	}
	if !strings.Contains(got[1], fmt.Sprintf("reload %06d ", total)) {
		t.Fatalf("second to last line = %q, want record %d", got[1], total)
	}

	all, err := Read(logPath, 0)
	if err != nil {
		t.Fatalf("Read(all) error = %v", err)
	}
	if len(all) != total+1 {
		t.Fatalf("Read(all) returned %d lines, want %d", len(all), total+1)
	}
}

func TestRead_EmptyFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "roster.INFO")
	if err := os.WriteFile(logPath, nil, 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	got, err := Read(logPath, 5)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("Read() = %#v, want empty non-nil slice", got)
	}
}

func TestParse(t *testing.T) {
	line := "W1019 14:32:15.123456   4242 coordinator.go:231] [cmd 01J] remote delete of record 2 failed"
	e, ok := Parse(line)
	if !ok {
		t.Fatalf("Parse(%q) ok = false", line)
	}
	if e.Severity != SeverityWarning {
		t.Fatalf("Severity = %v, want WARNING", e.Severity)
	}
	if e.Source != "coordinator.go:231" {
		t.Fatalf("Source = %q, want coordinator.go:231", e.Source)
	}
	if e.Message != "[cmd 01J] remote delete of record 2 failed" {
		t.Fatalf("Message = %q", e.Message)
	}
	if e.Time.Month() != time.October || e.Time.Day() != 19 || e.Time.Hour() != 14 {
		t.Fatalf("Time = %v, want Oct 19 14:32", e.Time)
	}
}

func TestParse_RejectsNonEntries(t *testing.T) {
	for _, line := range []string{
		"",
		"Log file created at: 2026/10/19 14:32:15",
		"Running on machine: host",
		"    continuation of a long message",
		"X1019 14:32:15.123456 1 a.go:1] bad level",
	} {
		if _, ok := Parse(line); ok {
			t.Errorf("Parse(%q) ok = true, want false", line)
		}
	}
}

func TestFilter(t *testing.T) {
	lines := []string{
		"Log file created at: 2026/10/19 14:32:15",
		"I1019 14:32:15.000001 1 app.go:10] loaded 24 records",
		"E1019 14:32:16.000001 1 app.go:20] reload failed",
		"    detail line",
		"I1019 14:32:17.000001 1 app.go:10] loaded 24 records",
	}

	got := Filter(lines, SeverityError)
	want := []string{lines[2], lines[3]}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Filter() = %v, want %v", got, want)
	}
	if got := Filter(lines, SeverityInfo); len(got) != len(lines) {
		t.Fatalf("Filter(info) kept %d lines, want %d", len(got), len(lines))
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want Severity
		ok   bool
	}{
		{"info", SeverityInfo, true},
		{"W", SeverityWarning, true},
		{"warn", SeverityWarning, true},
		{"Error", SeverityError, true},
		{"fatal", SeverityFatal, true},
		{"", SeverityUnknown, false},
		{"debug", SeverityUnknown, false},
	}
	for _, tt := range tests {
		got, ok := ParseSeverity(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseSeverity(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
