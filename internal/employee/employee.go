// Package employee defines the record type shared by the store, the view
// engine, the REST adapter and the UI.
package employee

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one employee. ID is the identity; every other field is mutable.
type Record struct {
	ID     int64
	Name   string
	Salary float64
	Age    int
}

// Field names a sortable record column.
type Field int

const (
	FieldNone Field = iota
	FieldID
	FieldName
	FieldSalary
	FieldAge
)

var fieldNames = map[Field]string{
	FieldNone:   "none",
	FieldID:     "id",
	FieldName:   "name",
	FieldSalary: "salary",
	FieldAge:    "age",
}

// Fields lists the record columns in display order.
func Fields() []Field {
	return []Field{FieldID, FieldName, FieldSalary, FieldAge}
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// ParseField maps a column name to a Field. The original API column names
// (employee_name, employee_salary, employee_age) are accepted as aliases.
func ParseField(name string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return FieldNone, nil
	case "id":
		return FieldID, nil
	case "name", "employee_name":
		return FieldName, nil
	case "salary", "employee_salary":
		return FieldSalary, nil
	case "age", "employee_age":
		return FieldAge, nil
	}
	return FieldNone, fmt.Errorf("unknown field %q", name)
}

// Text returns the textual form of a single field.
func (r Record) Text(f Field) string {
	switch f {
	case FieldID:
		return strconv.FormatInt(r.ID, 10)
	case FieldName:
		return r.Name
	case FieldSalary:
		return FormatNumber(r.Salary)
	case FieldAge:
		return strconv.Itoa(r.Age)
	}
	return ""
}

// SearchText is the concatenation the table filter matches against.
// Age is not part of it.
func (r Record) SearchText() string {
	return r.Text(FieldID) + r.Name + r.Text(FieldSalary)
}

// FormatNumber renders v with the shortest decimal representation, so 5000
// prints as "5000" and 5000.5 as "5000.5".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
