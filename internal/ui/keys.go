package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Reload     key.Binding
	Logs       key.Binding

	// Log view
	LogFollow key.Binding
	LogLevel  key.Binding

	// Table view state
	Filter         key.Binding
	SortID         key.Binding
	SortName       key.Binding
	SortSalary     key.Binding
	SortAge        key.Binding
	NextPage       key.Binding
	PrevPage       key.Binding
	GrowPageSize   key.Binding
	ShrinkPageSize key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Record actions
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding

	// Dialogs and input
	Confirm   key.Binding
	Cancel    key.Binding
	Yes       key.Binding
	No        key.Binding
	NextField key.Binding
	PrevField key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload from API"),
		),
		Logs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Show log"),
		),
		LogFollow: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Follow log"),
		),
		LogLevel: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Cycle log level"),
		),

		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Filter"),
		),
		SortID: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Sort by id"),
		),
		SortName: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Sort by name"),
		),
		SortSalary: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Sort by salary"),
		),
		SortAge: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Sort by age"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "right", "pgdown"),
			key.WithHelp("n/→", "Next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "left", "pgup"),
			key.WithHelp("p/←", "Previous page"),
		),
		GrowPageSize: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "More rows per page"),
		),
		ShrinkPageSize: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "Fewer rows per page"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "First row"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Last row"),
		),

		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add employee"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "Edit selected"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "Delete selected"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y", "enter"),
			key.WithHelp("y", "Yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "No"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Previous field"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Filter, k.SortID, k.SortName, k.SortSalary, k.SortAge},
		{k.NextPage, k.PrevPage, k.GrowPageSize, k.ShrinkPageSize},
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Add, k.Edit, k.Delete, k.Reload},
		{k.Logs, k.LogFollow, k.LogLevel},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
