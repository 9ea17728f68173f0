package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/command"
	"github.com/five82/roster/internal/employee"
)

// formField is one labelled input of the add/edit form.
type formField struct {
	field employee.Field
	input textinput.Model
	err   string
}

// formModal collects a record for add (id, name, salary, age) or edit
// (name, salary, age; the id is fixed).
type formModal struct {
	intent command.Intent
	fields []formField
	focus  int
	record employee.Record
}

func newFormModal(intent command.Intent) (Modal, tea.Cmd) {
	r := intent.Record

	var fields []employee.Field
	if intent.Kind == command.KindAdd {
		fields = append(fields, employee.FieldID)
	}
	fields = append(fields, employee.FieldName, employee.FieldSalary, employee.FieldAge)

	f := formModal{intent: intent, record: r}
	for _, field := range fields {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 64
		in.Width = 28
		switch field {
		case employee.FieldID:
			if r.ID != 0 {
				in.SetValue(strconv.FormatInt(r.ID, 10))
			}
		case employee.FieldName:
			in.SetValue(r.Name)
			in.Placeholder = "Full name"
		case employee.FieldSalary:
			if intent.Kind == command.KindEdit || r.Salary != 0 {
				in.SetValue(employee.FormatNumber(r.Salary))
			}
			in.Placeholder = "e.g. 320800"
		case employee.FieldAge:
			if intent.Kind == command.KindEdit || r.Age != 0 {
				in.SetValue(strconv.Itoa(r.Age))
			}
			in.Placeholder = "e.g. 61"
		}
		in.CursorEnd()
		f.fields = append(f.fields, formField{field: field, input: in})
	}
	cmd := f.fields[0].input.Focus()
	return f, cmd
}

func (f formModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, modalOutcome) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.Cancel):
			return f, nil, modalCancelled
		case key.Matches(keyMsg, keys.Confirm):
			record, errs := recordFromForm(f.intent, f.values())
			if len(errs) == 0 {
				f.record = record
				return f, nil, modalConfirmed
			}
			first := -1
			for i := range f.fields {
				f.fields[i].err = errs[f.fields[i].field]
				if first < 0 && f.fields[i].err != "" {
					first = i
				}
			}
			return f, f.focusOn(first), modalOpen
		case key.Matches(keyMsg, keys.NextField):
			return f, f.focusOn((f.focus + 1) % len(f.fields)), modalOpen
		case key.Matches(keyMsg, keys.PrevField):
			return f, f.focusOn((f.focus - 1 + len(f.fields)) % len(f.fields)), modalOpen
		}
	}

	field := &f.fields[f.focus]
	before := field.input.Value()
	var cmd tea.Cmd
	field.input, cmd = field.input.Update(msg)
	if field.input.Value() != before {
		field.err = ""
	}
	return f, cmd, modalOpen
}

// focusOn moves focus to field i; out-of-range indexes are ignored.
func (f *formModal) focusOn(i int) tea.Cmd {
	if i < 0 || i >= len(f.fields) {
		return nil
	}
	f.fields[f.focus].input.Blur()
	f.focus = i
	return f.fields[i].input.Focus()
}

func (f formModal) Payload() employee.Record {
	return f.record
}

func (f formModal) values() map[employee.Field]string {
	out := make(map[employee.Field]string, len(f.fields))
	for _, field := range f.fields {
		out[field.field] = field.input.Value()
	}
	return out
}

func (f formModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	labelStyle := styles.MutedText.Width(8)

	title := "Add employee"
	if f.intent.Kind == command.KindEdit {
		title = fmt.Sprintf("Edit employee #%d", f.intent.Record.ID)
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	b.WriteString("\n\n")
	for i, field := range f.fields {
		label := labelStyle.Render(field.field.String())
		if i == f.focus {
			label = styles.AccentText.Width(8).Render(field.field.String())
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, field.input.View()))
		b.WriteString("\n")
		if field.err != "" {
			b.WriteString(styles.DangerText.PaddingLeft(8).Render(field.err))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.AccentText.Render("enter") + styles.MutedText.Render(" save   ") +
		styles.AccentText.Render("esc") + styles.MutedText.Render(" cancel   ") +
		styles.AccentText.Render("tab") + styles.MutedText.Render(" next"))

	return placeModal(theme, width, height, 48, b.String())
}

// recordFromForm validates the raw form values. On edit the id comes from
// the intent. errs maps each invalid field to a message.
func recordFromForm(intent command.Intent, values map[employee.Field]string) (employee.Record, map[employee.Field]string) {
	errs := make(map[employee.Field]string)
	r := employee.Record{ID: intent.Record.ID}

	if intent.Kind == command.KindAdd {
		raw := strings.TrimSpace(values[employee.FieldID])
		switch id, err := strconv.ParseInt(raw, 10, 64); {
		case raw == "":
			errs[employee.FieldID] = "id is required"
		case err != nil:
			errs[employee.FieldID] = "id must be a whole number"
		case id <= 0:
			errs[employee.FieldID] = "id must be positive"
		default:
			r.ID = id
		}
	}

	r.Name = strings.TrimSpace(values[employee.FieldName])
	if r.Name == "" {
		errs[employee.FieldName] = "name is required"
	}

	raw := strings.TrimSpace(values[employee.FieldSalary])
	switch salary, err := strconv.ParseFloat(raw, 64); {
	case raw == "":
		errs[employee.FieldSalary] = "salary is required"
	case err != nil || math.IsNaN(salary) || math.IsInf(salary, 0):
		errs[employee.FieldSalary] = "salary must be a number"
	case salary < 0:
		errs[employee.FieldSalary] = "salary must not be negative"
	default:
		r.Salary = salary
	}

	raw = strings.TrimSpace(values[employee.FieldAge])
	switch age, err := strconv.Atoi(raw); {
	case raw == "":
		errs[employee.FieldAge] = "age is required"
	case err != nil:
		errs[employee.FieldAge] = "age must be a whole number"
	case age < 0:
		errs[employee.FieldAge] = "age must not be negative"
	default:
		r.Age = age
	}

	return r, errs
}
