package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/command"
	"github.com/five82/roster/internal/employee"
)

// modalOutcome tells the model what the user decided in a modal.
type modalOutcome int

const (
	modalOpen modalOutcome = iota
	modalConfirmed
	modalCancelled
)

// Modal is the interface for modal dialogs.
// Update returns the updated modal, a command, and whether the user
// confirmed or cancelled. Payload is read once the modal is confirmed.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, modalOutcome)
	View(theme Theme, width, height int) string
	Payload() employee.Record
}

// newModal builds the modal that presents intent.
func newModal(intent command.Intent) (Modal, tea.Cmd) {
	switch intent.Kind {
	case command.KindDelete:
		return deleteModal{intent: intent}, nil
	default:
		return newFormModal(intent)
	}
}

// placeModal centers a bordered box on the screen.
func placeModal(theme Theme, width, height, boxWidth int, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(boxWidth).
		Render(content)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
