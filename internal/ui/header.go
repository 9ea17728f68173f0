package ui

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar: record counts, API host, last
// update and the latest status message.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	sep := bg.Spaces(2)

	parts := []string{bg.Render("roster", styles.Logo)}

	count := fmt.Sprintf("%d employees", m.total)
	if m.total == 1 {
		count = "1 employee"
	}
	parts = append(parts, bg.Render(count, styles.Text))

	if m.page.State.Filter != "" {
		parts = append(parts,
			bg.Render("Shown:", styles.MutedText)+bg.Space()+bg.Render(fmt.Sprint(m.page.FilteredCount), styles.AccentText))
	}
	if spec := m.page.State.Sort; spec.Active() {
		parts = append(parts,
			bg.Render("Sort:", styles.MutedText)+bg.Space()+bg.Render(spec.Field.String()+" "+spec.Direction.String(), styles.AccentText))
	}
	if !compact && m.apiURL != "" {
		parts = append(parts, bg.Render(apiHost(m.apiURL), styles.FaintText))
	}
	if m.reloading {
		parts = append(parts, bg.Render("Reloading...", styles.WarningText.Bold(true)))
	} else {
		parts = append(parts, bg.Render(m.formatTimestamp(), styles.MutedText))
	}

	if msg := m.status; msg.text != "" {
		limit := 60
		if compact {
			limit = 32
		}
		style := styles.SuccessText
		switch msg.level {
		case statusWarn:
			style = styles.WarningText.Bold(true)
		case statusError:
			style = styles.DangerText
		}
		parts = append(parts, bg.Render(truncate(msg.text, limit), style))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// formatTimestamp reports when the record list last changed.
func (m Model) formatTimestamp() string {
	if m.lastUpdated.IsZero() {
		return "never loaded"
	}
	ts := m.lastUpdated.Format("15:04:05")
	ago := humanizeDuration(time.Since(m.lastUpdated))
	if ago == "now" {
		return ts + " (now)"
	}
	return fmt.Sprintf("%s (%s ago)", ts, ago)
}

// humanizeDuration renders d in its two largest units, e.g. "2h 3m".
func humanizeDuration(d time.Duration) string {
	if d < time.Second {
		return "now"
	}
	days := int(d / (24 * time.Hour))
	hours := int(d/time.Hour) % 24
	minutes := int(d/time.Minute) % 60
	seconds := int(d/time.Second) % 60

	switch {
	case days > 0:
		if hours > 0 {
			return fmt.Sprintf("%dd %dh", days, hours)
		}
		return fmt.Sprintf("%dd", days)
	case hours > 0:
		if minutes > 0 {
			return fmt.Sprintf("%dh %dm", hours, minutes)
		}
		return fmt.Sprintf("%dh", hours)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%ds", seconds)
}

func apiHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return truncateMiddle(raw, 40)
	}
	return u.Host
}

// renderCommandBar renders the key hints for the current mode.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.filtering:
		commands = []cmd{
			{"enter", "Keep filter"},
			{"esc", "Clear filter"},
		}
	default:
		commands = []cmd{
			{"/", "Filter"},
			{"1-4", "Sort"},
			{"n/p", "Page"},
			{"+/-", "Rows"},
			{"a", "Add"},
			{"e", "Edit"},
			{"d", "Delete"},
			{"r", "Reload"},
			{"L", "Log"},
			{"?", "More"},
		}
		if m.width > 0 && m.width < LayoutCompactWidth {
			commands = commands[:len(commands)-2]
			commands = append(commands, cmd{"?", "More"})
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Padding(0, 1).
		Width(m.width).
		Render(strings.Join(segments, sep))
}
