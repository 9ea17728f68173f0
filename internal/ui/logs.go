package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/logtail"
)

// logBufferLimit bounds how much of the log file the view keeps.
const logBufferLimit = 2000

// logState holds the log view's state.
type logState struct {
	path     string
	lines    []string
	minLevel logtail.Severity
	follow   bool
	missing  bool
	err      error

	// Skip re-rendering when the tail is unchanged.
	rendered string
}

func newLogState(path string) logState {
	return logState{
		path:     path,
		minLevel: logtail.SeverityInfo,
		follow:   true,
	}
}

// openLogs shows the log view and loads the current tail.
func (m *Model) openLogs() {
	m.showLogs = true
	m.logState.rendered = ""
	m.refreshLogs()
}

// refreshLogs re-reads the log tail and updates the viewport.
func (m *Model) refreshLogs() {
	if m.logState.path == "" {
		m.logState.lines = nil
		m.logState.err = nil
	} else {
		lines, err := logtail.Read(m.logState.path, logBufferLimit)
		m.logState.err = err
		m.logState.missing = err == nil && lines == nil
		if err == nil {
			m.logState.lines = logtail.Filter(lines, m.logState.minLevel)
		}
	}
	m.updateLogViewport()
}

// updateLogViewport sizes the viewport and refreshes its content.
func (m *Model) updateLogViewport() {
	width := max(m.width-4, 10)
	height := max(m.height-5, 3)
	if m.logView.Width == 0 {
		m.logView = viewport.New(width, height)
	}
	m.logView.Width = width
	m.logView.Height = height
	m.logView.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))

	content := m.renderLogContent()
	if content != m.logState.rendered {
		m.logView.SetContent(content)
		m.logState.rendered = content
	}
	if m.logState.follow {
		m.logView.GotoBottom()
	}
}

func (m Model) renderLogContent() string {
	bg := NewBgStyle(m.theme.FocusBg)
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	width := m.logView.Width

	switch {
	case m.logState.path == "":
		return bg.FillLine(bg.Render("Logging to a file is disabled", styles.MutedText), width)
	case m.logState.err != nil:
		return bg.FillLine(bg.Render(m.logState.err.Error(), styles.DangerText), width)
	case m.logState.missing:
		return bg.FillLine(bg.Render("No log yet at "+m.logState.path, styles.MutedText), width)
	case len(m.logState.lines) == 0:
		return bg.FillLine(bg.Render("No entries at "+m.logState.minLevel.String()+" or above", styles.MutedText), width)
	}

	var b strings.Builder
	current := logtail.SeverityUnknown
	for i, line := range m.logState.lines {
		if e, ok := logtail.Parse(line); ok {
			current = e.Severity
		}
		text := truncate(line, max(width-7, 1))
		b.WriteString(bg.FillLine(
			bg.Render(fmt.Sprintf("%4d │ ", i+1), styles.FaintText)+bg.Render(text, severityStyle(current, styles)),
			width))
		if i < len(m.logState.lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func severityStyle(s logtail.Severity, styles Styles) lipgloss.Style {
	switch s {
	case logtail.SeverityWarning:
		return styles.WarningText
	case logtail.SeverityError, logtail.SeverityFatal:
		return styles.DangerText
	case logtail.SeverityInfo:
		return styles.Text
	}
	return styles.MutedText
}

// nextLogLevel cycles the minimum severity shown.
func nextLogLevel(s logtail.Severity) logtail.Severity {
	switch s {
	case logtail.SeverityInfo:
		return logtail.SeverityWarning
	case logtail.SeverityWarning:
		return logtail.SeverityError
	}
	return logtail.SeverityInfo
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Logs):
		m.showLogs = false
		return m, nil
	case key.Matches(msg, m.keys.LogFollow):
		m.logState.follow = !m.logState.follow
		m.updateLogViewport()
		return m, nil
	case key.Matches(msg, m.keys.LogLevel):
		m.logState.minLevel = nextLogLevel(m.logState.minLevel)
		m.refreshLogs()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.logState.follow = true
		m.logView.GotoBottom()
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.logState.follow = false
		m.logView.GotoTop()
		return m, nil
	}

	var cmd tea.Cmd
	m.logView, cmd = m.logView.Update(msg)
	if !m.logView.AtBottom() {
		m.logState.follow = false
	}
	return m, cmd
}

func (m Model) renderLogs() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	title := "Log · " + m.logState.minLevel.String() + "+"
	box := m.renderTitledBox(title, m.logView.View(), m.width, max(m.height-1, 3), true)

	follow := "paused"
	if m.logState.follow {
		follow = "following"
	}
	parts := []string{
		bg.Render("esc", styles.AccentText) + bg.Sep(":") + bg.Render("Back", styles.MutedText),
		bg.Render("f", styles.AccentText) + bg.Sep(":") + bg.Render(follow, styles.MutedText),
		bg.Render("v", styles.AccentText) + bg.Sep(":") + bg.Render("Level", styles.MutedText),
		bg.Render(truncateMiddle(m.logState.path, max(m.width/2, 10)), styles.FaintText),
	}
	status := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Padding(0, 1).
		Width(m.width).
		Render(bg.Join(parts, "  "))
	return box + "\n" + status
}
