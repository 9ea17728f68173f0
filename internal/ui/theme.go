package ui

import "github.com/charmbracelet/lipgloss"

// Theme is a named color palette. Colors are hex strings.
type Theme struct {
	Name string

	Background string // behind modals
	Surface    string // header and command bar
	SurfaceAlt string // unfocused boxes
	FocusBg    string // table and log boxes

	SelectionBg   string
	SelectionText string
	StripeBg      string // every other table row

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string // numeric cells
}

// Styles holds the text styles derived from a Theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header lipgloss.Style
	Logo   lipgloss.Style
}

// Styles builds the theme's text styles. They carry no background; use
// WithBackground before rendering onto a colored surface.
func (t Theme) Styles() Styles {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Styles{
		Text:        fg(t.Text),
		MutedText:   fg(t.Muted),
		FaintText:   fg(t.Faint),
		AccentText:  fg(t.Accent),
		SuccessText: fg(t.Success).Bold(true),
		WarningText: fg(t.Warning),
		DangerText:  fg(t.Danger).Bold(true),
		InfoText:    fg(t.Info),
		Header:      fg(t.Text).Background(lipgloss.Color(t.Surface)).Padding(0, 1),
		Logo:        fg(t.Accent).Bold(true),
	}
}

// WithBackground returns a copy of s with every style painted on bgColor.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	return Styles{
		Text:        s.Text.Background(bg),
		MutedText:   s.MutedText.Background(bg),
		FaintText:   s.FaintText.Background(bg),
		AccentText:  s.AccentText.Background(bg),
		SuccessText: s.SuccessText.Background(bg),
		WarningText: s.WarningText.Background(bg),
		DangerText:  s.DangerText.Background(bg),
		InfoText:    s.InfoText.Background(bg),
		Header:      s.Header.Background(bg),
		Logo:        s.Logo.Background(bg),
	}
}

// themes is the cycle order for NextTheme. The first entry is the fallback.
var themes = []Theme{
	{
		// Dracula
		Name:       "Dracula",
		Background: "#191A21", Surface: "#282A36", SurfaceAlt: "#21222C", FocusBg: "#21222C",
		SelectionBg: "#44475A", SelectionText: "#F8F8F2", StripeBg: "#282A36",
		Border: "#44475A", BorderFocus: "#BD93F9",
		Text: "#F8F8F2", Muted: "#6272A4", Faint: "#44475A", Accent: "#BD93F9",
		Success: "#50FA7B", Warning: "#FFB86C", Danger: "#FF5555", Info: "#8BE9FD",
	},
	{
		// Tailwind slate and sky
		Name:       "Slate",
		Background: "#020617", Surface: "#0f172a", SurfaceAlt: "#1e293b", FocusBg: "#0f172a",
		SelectionBg: "#0284c7", SelectionText: "#f8fafc", StripeBg: "#1e293b",
		Border: "#334155", BorderFocus: "#38bdf8",
		Text: "#f1f5f9", Muted: "#94a3b8", Faint: "#64748b", Accent: "#38bdf8",
		Success: "#22c55e", Warning: "#f59e0b", Danger: "#ef4444", Info: "#06b6d4",
	},
	{
		// Solarized light
		Name:       "Paper",
		Background: "#eee8d5", Surface: "#eee8d5", SurfaceAlt: "#fdf6e3", FocusBg: "#fdf6e3",
		SelectionBg: "#268bd2", SelectionText: "#fdf6e3", StripeBg: "#f5efdc",
		Border: "#93a1a1", BorderFocus: "#268bd2",
		Text: "#073642", Muted: "#657b83", Faint: "#93a1a1", Accent: "#6c71c4",
		Success: "#859900", Warning: "#b58900", Danger: "#dc322f", Info: "#2aa198",
	},
}

// GetTheme returns the named theme, or the first theme when name is unknown.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the theme after current in the cycle.
func NextTheme(current string) string {
	for i, t := range themes {
		if t.Name == current {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

// ThemeNames lists the themes in cycle order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
