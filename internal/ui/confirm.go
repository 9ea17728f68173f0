package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/roster/internal/command"
	"github.com/five82/roster/internal/employee"
)

// deleteModal asks y/n before a delete.
type deleteModal struct {
	intent command.Intent
}

func (d deleteModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, modalOutcome) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil, modalOpen
	}
	switch {
	case key.Matches(keyMsg, keys.Yes):
		return d, nil, modalConfirmed
	case key.Matches(keyMsg, keys.No):
		return d, nil, modalCancelled
	}
	return d, nil, modalOpen
}

func (d deleteModal) Payload() employee.Record {
	return d.intent.Record
}

func (d deleteModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	r := d.intent.Record

	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Delete employee"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(fmt.Sprintf("#%d %s", r.ID, r.Name)))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("salary %s · age %d", formatSalary(r.Salary), r.Age)))
	b.WriteString("\n\n")
	b.WriteString(styles.AccentText.Render("y") + styles.MutedText.Render(" delete   ") +
		styles.AccentText.Render("n") + styles.MutedText.Render(" keep"))

	return placeModal(theme, width, height, 44, b.String())
}
