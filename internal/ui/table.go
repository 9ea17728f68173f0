package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/five82/roster/internal/employee"
	"github.com/five82/roster/internal/view"
)

var salaryPrinter = message.NewPrinter(language.English)

// formatSalary groups thousands and keeps at most two decimals.
func formatSalary(v float64) string {
	return salaryPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// rangeLabel describes the rows on the current page, "11 – 20 of 24". A page
// past the end shows the range it would cover.
func rangeLabel(pageIndex, pageSize, length int) string {
	if length <= 0 || pageSize <= 0 {
		return fmt.Sprintf("0 of %d", max(length, 0))
	}
	start := pageIndex * pageSize
	end := start + pageSize
	if start < length {
		end = min(end, length)
	}
	return fmt.Sprintf("%d – %d of %d", start+1, end, length)
}

// sortIndicator marks the active sort column.
func sortIndicator(spec view.SortSpec, field employee.Field) string {
	if !spec.Active() || spec.Field != field {
		return ""
	}
	if spec.Direction == view.Descending {
		return " ▼"
	}
	return " ▲"
}

// tableColumns holds the resolved column widths for one render.
type tableColumns struct {
	name        int
	showActions bool
}

func layoutColumns(width int) tableColumns {
	cols := tableColumns{showActions: width >= LayoutActionsWidth}
	fixed := colIDWidth + colSalaryWidth + colAgeWidth + 3*colGap
	if cols.showActions {
		fixed += colActionsWidth + colGap
	}
	cols.name = max(width-fixed, colMinNameWidth)
	return cols
}

// renderTableHeader renders the column titles with their sort keys.
func (m Model) renderTableHeader(width int, bgColor string) string {
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()
	head := styles.MutedText.Bold(true)
	spec := m.page.State.Sort
	cols := layoutColumns(width)

	cells := []string{
		bg.Cell("1 id"+sortIndicator(spec, employee.FieldID), colIDWidth, lipgloss.Left, head),
		bg.Cell("2 name"+sortIndicator(spec, employee.FieldName), cols.name, lipgloss.Left, head),
		bg.Cell("3 salary"+sortIndicator(spec, employee.FieldSalary), colSalaryWidth, lipgloss.Right, head),
		bg.Cell("4 age"+sortIndicator(spec, employee.FieldAge), colAgeWidth+2, lipgloss.Right, head),
	}
	if cols.showActions {
		cells = append(cells, bg.Cell("actions", colActionsWidth, lipgloss.Left, head))
	}
	return bg.FillLine(strings.Join(cells, bg.Spaces(colGap)), width)
}

// renderTableRow renders one record. Selected rows use the selection colors
// and spell out the action keys.
func (m Model) renderTableRow(r employee.Record, width int, bgColor string, selected bool) string {
	styles := m.theme.Styles()
	idStyle, textStyle, numStyle, actionStyle := styles.MutedText, styles.Text, styles.InfoText, styles.FaintText
	if selected {
		bgColor = m.theme.SelectionBg
		sel := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		idStyle, textStyle, numStyle = sel, sel.Bold(true), sel
		actionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
	}
	bg := NewBgStyle(bgColor)
	cols := layoutColumns(width)

	cells := []string{
		bg.Cell("#"+strconv.FormatInt(r.ID, 10), colIDWidth, lipgloss.Left, idStyle),
		bg.Cell(r.Name, cols.name, lipgloss.Left, textStyle),
		bg.Cell(formatSalary(r.Salary), colSalaryWidth, lipgloss.Right, numStyle),
		bg.Cell(strconv.Itoa(r.Age), colAgeWidth+2, lipgloss.Right, numStyle),
	}
	if cols.showActions {
		actions := "edit · delete"
		if selected {
			actions = "e edit · d del"
		}
		cells = append(cells, bg.Cell(actions, colActionsWidth, lipgloss.Left, actionStyle))
	}
	return bg.FillLine(strings.Join(cells, bg.Spaces(colGap)), width)
}

// renderTable renders the employees panel: optional filter line, column
// header, the visible slice of the page and the pager line.
func (m Model) renderTable(width, height int) string {
	height = max(height, 6)
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	innerWidth := width - 2
	innerHeight := height - 2

	var lines []string
	if m.filtering {
		lines = append(lines, bg.FillLine(m.filterInput.View(), innerWidth))
	} else if f := m.page.State.Filter; f != "" {
		lines = append(lines, bg.FillLine(
			bg.Render("filter", styles.MutedText)+bg.Space()+bg.Render(f, styles.AccentText), innerWidth))
	}
	lines = append(lines, m.renderTableHeader(innerWidth, m.theme.FocusBg))

	pager := m.renderPager(innerWidth, styles, bg)
	room := max(innerHeight-len(lines)-1, 1)

	rows := m.page.Rows
	if len(rows) == 0 {
		msg := "No employees"
		switch {
		case m.page.State.Filter != "" && m.page.FilteredCount == 0:
			msg = fmt.Sprintf("No employees match %q", m.page.State.Filter)
		case m.page.FilteredCount > 0:
			msg = "Nothing on this page"
		}
		lines = append(lines, "", bg.FillLine(bg.Render(msg, styles.MutedText), innerWidth))
	} else {
		offset := 0
		if m.selectedRow >= room {
			offset = m.selectedRow - room + 1
		}
		end := min(offset+room, len(rows))
		for i := offset; i < end; i++ {
			rowBg := m.theme.FocusBg
			if i%2 == 1 {
				rowBg = m.theme.StripeBg
			}
			lines = append(lines, m.renderTableRow(rows[i], innerWidth, rowBg, i == m.selectedRow))
		}
	}

	for len(lines) < innerHeight-1 {
		lines = append(lines, "")
	}
	lines = append(lines[:innerHeight-1], pager)

	title := "Employees"
	if m.page.State.Filter != "" {
		title = fmt.Sprintf("Employees (%d of %d)", m.page.FilteredCount, m.total)
	}
	return m.renderTitledBox(title, strings.Join(lines, "\n"), width, height, true)
}

// renderPager renders "Rows per page: 10   11 – 20 of 24   page 2/3".
func (m Model) renderPager(width int, styles Styles, bg BgStyle) string {
	st := m.page.State
	pages := max(m.page.PageCount(), 1)
	parts := []string{
		bg.Render("Rows per page:", styles.MutedText) + bg.Space() + bg.Render(strconv.Itoa(st.PageSize), styles.Text),
		bg.Render(rangeLabel(st.PageIndex, st.PageSize, m.page.FilteredCount), styles.Text),
		bg.Render(fmt.Sprintf("page %d/%d", st.PageIndex+1, pages), styles.MutedText),
	}
	line := bg.Join(parts, "   ")
	return lipgloss.NewStyle().Background(bg.bg).Width(width).Align(lipgloss.Right).Render(line)
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr, bgColorStr := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColorStr, bgColorStr = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 0))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(lipgloss.Color(bgColorStr))
	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	padded := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		padded = append(padded,
			bg.Render("│", borderStyle)+contentStyle.Render(line)+bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(padded, "\n") + "\n" + bottomBorder
}
