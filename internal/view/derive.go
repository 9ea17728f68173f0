package view

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/five82/roster/internal/employee"
)

// Derived is one computed page of the table.
type Derived struct {
	// FilteredCount is the number of records passing the filter, across
	// all pages.
	FilteredCount int
	// Rows is the current page, at most State.PageSize records.
	Rows []employee.Record
	// State is the view state the page was computed from.
	State State
	// Revision increases with every recomputation.
	Revision uint64
}

// PageCount returns the number of pages the filtered records span.
func (d Derived) PageCount() int {
	if d.State.PageSize <= 0 || d.FilteredCount == 0 {
		return 0
	}
	return (d.FilteredCount + d.State.PageSize - 1) / d.State.PageSize
}

// Derive computes the page for records under st. It filters, sorts, then
// slices out the page; it never modifies records.
func Derive(records []employee.Record, st State) Derived {
	filtered := filterRecords(records, st.Filter)
	sortRecords(filtered, st.Sort)
	return Derived{
		FilteredCount: len(filtered),
		Rows:          paginate(filtered, st.PageIndex, st.PageSize),
		State:         st,
	}
}

// filterRecords keeps records whose lowercased id+name+salary text contains
// the lowercased filter. The result is always a fresh slice.
func filterRecords(records []employee.Record, filter string) []employee.Record {
	lower := cases.Lower(language.Und)
	needle := lower.String(filter)

	out := make([]employee.Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(lower.String(r.SearchText()), needle) {
			out = append(out, r)
		}
	}
	return out
}

// sortRecords orders records in place. Equal keys may come out in any order.
func sortRecords(records []employee.Record, spec SortSpec) {
	if !spec.Active() {
		return
	}
	slices.SortFunc(records, func(a, b employee.Record) int {
		c := compareField(a, b, spec.Field)
		if spec.Direction == Descending {
			return -c
		}
		return c
	})
}

// compareField compares numerically when both values read as finite numbers and
// falls back to plain text comparison otherwise.
func compareField(a, b employee.Record, f employee.Field) int {
	ta, tb := a.Text(f), b.Text(f)
	na, okA := parseNumber(ta)
	nb, okB := parseNumber(tb)
	if okA && okB {
		return cmp.Compare(na, nb)
	}
	return strings.Compare(ta, tb)
}

func parseNumber(text string) (float64, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// paginate returns up to size records starting at index*size. A start past
// the end yields an empty page rather than an error.
func paginate(records []employee.Record, index, size int) []employee.Record {
	if size <= 0 || index < 0 {
		return nil
	}
	start := index * size
	if start >= len(records) {
		return nil
	}
	end := min(start+size, len(records))
	return slices.Clip(records[start:end])
}
