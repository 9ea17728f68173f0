package ui

import (
	"testing"

	"github.com/five82/roster/internal/command"
	"github.com/five82/roster/internal/employee"
)

func TestRecordFromForm_Add(t *testing.T) {
	intent := command.Intent{Kind: command.KindAdd}
	r, errs := recordFromForm(intent, map[employee.Field]string{
		employee.FieldID:     " 7 ",
		employee.FieldName:   " Tiger Nixon ",
		employee.FieldSalary: "320800.5",
		employee.FieldAge:    "61",
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := employee.Record{ID: 7, Name: "Tiger Nixon", Salary: 320800.5, Age: 61}
	if r != want {
		t.Fatalf("record = %+v, want %+v", r, want)
	}
}

func TestRecordFromForm_EditKeepsIntentID(t *testing.T) {
	intent := command.Intent{Kind: command.KindEdit, Record: employee.Record{ID: 42}}
	r, errs := recordFromForm(intent, map[employee.Field]string{
		employee.FieldID:     "999",
		employee.FieldName:   "Ann",
		employee.FieldSalary: "1",
		employee.FieldAge:    "2",
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if r.ID != 42 {
		t.Fatalf("ID = %d, want 42", r.ID)
	}
}

func TestRecordFromForm_Errors(t *testing.T) {
	intent := command.Intent{Kind: command.KindAdd}
	_, errs := recordFromForm(intent, map[employee.Field]string{
		employee.FieldID:     "x",
		employee.FieldName:   "  ",
		employee.FieldSalary: "NaN",
		employee.FieldAge:    "-1",
	})

	want := map[employee.Field]string{
		employee.FieldID:     "id must be a whole number",
		employee.FieldName:   "name is required",
		employee.FieldSalary: "salary must be a number",
		employee.FieldAge:    "age must not be negative",
	}
	for field, msg := range want {
		if errs[field] != msg {
			t.Errorf("errs[%v] = %q, want %q", field, errs[field], msg)
		}
	}
}
