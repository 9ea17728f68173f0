package logtail

import (
	"strings"
	"time"
)

// Severity is a glog severity level.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Entry is one parsed glog line:
//
//	Lmmdd hh:mm:ss.uuuuuu threadid file:line] msg
type Entry struct {
	Severity Severity
	Time     time.Time // month, day and clock only; the year is zero
	Source   string    // file:line
	Message  string
}

// Parse splits a glog line into its header fields. Lines without a glog
// header (file banners, wrapped continuation lines) return false.
func Parse(line string) (Entry, bool) {
	if len(line) < 22 {
		return Entry{}, false
	}
	sev := severityOf(line[0])
	if sev == SeverityUnknown {
		return Entry{}, false
	}

	header, msg, ok := strings.Cut(line[1:], "] ")
	if !ok {
		header, ok = strings.CutSuffix(line[1:], "]")
		if !ok {
			return Entry{}, false
		}
	}
	fields := strings.Fields(header)
	if len(fields) != 4 {
		return Entry{}, false
	}
	ts, err := time.Parse("0102 15:04:05.000000", fields[0]+" "+fields[1])
	if err != nil {
		return Entry{}, false
	}

	return Entry{
		Severity: sev,
		Time:     ts,
		Source:   fields[3],
		Message:  msg,
	}, true
}

// Filter keeps lines at or above min. Lines that do not parse belong to the
// entry before them and share its fate.
func Filter(lines []string, min Severity) []string {
	if min <= SeverityInfo {
		return lines
	}
	var out []string
	keep := false
	for _, line := range lines {
		if e, ok := Parse(line); ok {
			keep = e.Severity >= min
		}
		if keep {
			out = append(out, line)
		}
	}
	return out
}

// ParseSeverity maps "info", "warning", "error" or "fatal" (or their first
// letter) to a Severity.
func ParseSeverity(name string) (Severity, bool) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if n == "" {
		return SeverityUnknown, false
	}
	if n == "WARN" {
		return SeverityWarning, true
	}
	for s := SeverityInfo; s <= SeverityFatal; s++ {
		if n == s.String() || (len(n) == 1 && n[0] == s.String()[0]) {
			return s, true
		}
	}
	return SeverityUnknown, false
}

func severityOf(b byte) Severity {
	switch b {
	case 'I':
		return SeverityInfo
	case 'W':
		return SeverityWarning
	case 'E':
		return SeverityError
	case 'F':
		return SeverityFatal
	default:
		return SeverityUnknown
	}
}
