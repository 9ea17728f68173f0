package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// newHelp builds the bubbles help view styled for theme.
func newHelp(theme Theme) help.Model {
	h := help.New()
	h.ShowAll = true
	h.FullSeparator = "    "
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warning))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text))
	sepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Faint))
	h.Styles.FullKey = keyStyle
	h.Styles.FullDesc = descStyle
	h.Styles.FullSeparator = sepStyle
	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = descStyle
	h.Styles.ShortSeparator = sepStyle
	return h
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("In dialogs: enter confirms, esc cancels, tab moves between fields."))

	boxWidth := min(max(m.width-8, 40), 110)
	return placeModal(m.theme, m.width, m.height, boxWidth, b.String())
}
