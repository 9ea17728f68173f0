package view

import (
	"fmt"
	"strings"

	"github.com/five82/roster/internal/employee"
)

// Direction is the sort direction of the active column.
type Direction int

const (
	DirectionNone Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "none"
	}
}

// ParseDirection accepts "asc"/"ascending", "desc"/"descending" and
// ""/"none".
func ParseDirection(value string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none":
		return DirectionNone, nil
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return DirectionNone, fmt.Errorf("unknown sort direction %q", value)
}

// SortSpec selects one column and a direction.
type SortSpec struct {
	Field     employee.Field
	Direction Direction
}

// Active reports whether the sort reorders anything.
func (s SortSpec) Active() bool {
	return s.Field != employee.FieldNone && s.Direction != DirectionNone
}

// Toggle returns the sort after a click on column f: a new column starts
// ascending, the active column cycles ascending → descending → none.
func (s SortSpec) Toggle(f employee.Field) SortSpec {
	if f == employee.FieldNone {
		return SortSpec{}
	}
	if s.Field != f || s.Direction == DirectionNone {
		return SortSpec{Field: f, Direction: Ascending}
	}
	if s.Direction == Ascending {
		return SortSpec{Field: f, Direction: Descending}
	}
	return SortSpec{}
}

// DefaultPageSize is used when no valid page size is configured.
const DefaultPageSize = 10

// PageSizeOptions are the page sizes offered by the table pager.
var PageSizeOptions = []int{5, 10, 25, 100}

// State is everything besides the data that shapes the rendered page.
type State struct {
	Filter    string
	Sort      SortSpec
	PageIndex int
	PageSize  int
}

// DefaultState returns the initial state: no filter, no sort, first page.
func DefaultState(pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return State{PageSize: pageSize}
}
