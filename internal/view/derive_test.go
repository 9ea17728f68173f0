package view

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/roster/internal/employee"
)

func sampleRecords() []employee.Record {
	return []employee.Record{
		{ID: 1, Name: "Ann", Salary: 5000, Age: 30},
		{ID: 2, Name: "Bo", Salary: 7000, Age: 40},
		{ID: 3, Name: "Cy", Salary: 3000, Age: 25},
	}
}

func names(records []employee.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func TestDerive_EmptyFilterMatchesEverythingInOrder(t *testing.T) {
	d := Derive(sampleRecords(), DefaultState(10))
	assert.Equal(t, 3, d.FilteredCount)
	assert.Equal(t, []string{"Ann", "Bo", "Cy"}, names(d.Rows))
}

func TestDerive_FilterIsCaseInsensitiveAndIgnoresAge(t *testing.T) {
	records := sampleRecords()

	st := DefaultState(10)
	st.Filter = "ANN"
	assert.Equal(t, []string{"Ann"}, names(Derive(records, st).Rows))

	// Salary text is searchable.
	st.Filter = "700"
	assert.Equal(t, []string{"Bo"}, names(Derive(records, st).Rows))

	// Id text is searchable.
	st.Filter = "3"
	assert.Equal(t, []string{"Cy"}, names(Derive(records, st).Rows))

	// Age 40 is not part of the search text.
	st.Filter = "40"
	d := Derive(records, st)
	assert.Zero(t, d.FilteredCount)
	assert.Empty(t, d.Rows)
}

func TestDerive_FilterSubsetProperty(t *testing.T) {
	records := make([]employee.Record, 0, 60)
	for i := 1; i <= 60; i++ {
		records = append(records, employee.Record{
			ID:     int64(i),
			Name:   fmt.Sprintf("Emp%c%d", 'a'+rune(i%26), i),
			Salary: float64(i * 137),
			Age:    20 + i%40,
		})
	}

	for _, filter := range []string{"", "a", "EMP", "1", "37", "zz", "pB", "5480"} {
		st := State{Filter: filter, PageSize: len(records)}
		d := Derive(records, st)
		for _, r := range d.Rows {
			assert.Contains(t, strings.ToLower(r.SearchText()), strings.ToLower(filter), "filter %q", filter)
		}
		want := 0
		for _, r := range records {
			if strings.Contains(strings.ToLower(r.SearchText()), strings.ToLower(filter)) {
				want++
			}
		}
		assert.Equal(t, want, d.FilteredCount, "filter %q", filter)
	}
}

func TestDerive_SortBySalary(t *testing.T) {
	st := DefaultState(10)
	st.Sort = SortSpec{Field: employee.FieldSalary, Direction: Ascending}
	assert.Equal(t, []string{"Cy", "Ann", "Bo"}, names(Derive(sampleRecords(), st).Rows))

	st.Sort.Direction = Descending
	assert.Equal(t, []string{"Bo", "Ann", "Cy"}, names(Derive(sampleRecords(), st).Rows))
}

func TestDerive_NumericSortIsNotLexical(t *testing.T) {
	records := []employee.Record{
		{ID: 1, Name: "eighty", Salary: 80},
		{ID: 2, Name: "nine", Salary: 9},
		{ID: 3, Name: "hundred", Salary: 100},
	}
	st := DefaultState(10)
	st.Sort = SortSpec{Field: employee.FieldSalary, Direction: Ascending}
	assert.Equal(t, []string{"nine", "eighty", "hundred"}, names(Derive(records, st).Rows))
}

func TestDerive_TextSortFallsBackWhenNotNumeric(t *testing.T) {
	records := []employee.Record{
		{ID: 1, Name: "Cy"},
		{ID: 2, Name: "10"},
		{ID: 3, Name: "9"},
		{ID: 4, Name: "Ann"},
	}
	st := DefaultState(10)
	st.Sort = SortSpec{Field: employee.FieldName, Direction: Ascending}
	d := Derive(records, st)

	// "9" vs "10" compare numerically; names against digits compare as text.
	got := names(d.Rows)
	require.Len(t, got, 4)
	assert.Less(t, indexOf(got, "9"), indexOf(got, "10"))
	assert.Less(t, indexOf(got, "Ann"), indexOf(got, "Cy"))
	assert.Less(t, indexOf(got, "10"), indexOf(got, "Ann"))
}

func TestDerive_InfinityNamesSortAsText(t *testing.T) {
	records := []employee.Record{
		{ID: 1, Name: "inf"},
		{ID: 2, Name: "Infinity"},
		{ID: 3, Name: "INF"},
		{ID: 4, Name: "+Inf"},
	}
	st := DefaultState(10)
	st.Sort = SortSpec{Field: employee.FieldName, Direction: Ascending}

	assert.Equal(t, []string{"+Inf", "INF", "Infinity", "inf"}, names(Derive(records, st).Rows))
}

func TestDerive_InactiveSortKeepsFilterOrder(t *testing.T) {
	records := []employee.Record{{ID: 3, Name: "c"}, {ID: 1, Name: "a"}, {ID: 2, Name: "b"}}

	st := DefaultState(10)
	st.Sort = SortSpec{Field: employee.FieldID, Direction: DirectionNone}
	assert.Equal(t, []string{"c", "a", "b"}, names(Derive(records, st).Rows))

	st.Sort = SortSpec{Field: employee.FieldNone, Direction: Descending}
	assert.Equal(t, []string{"c", "a", "b"}, names(Derive(records, st).Rows))
}

func TestDerive_PageLengthProperty(t *testing.T) {
	records := make([]employee.Record, 23)
	for i := range records {
		records[i] = employee.Record{ID: int64(i + 1), Name: fmt.Sprintf("n%d", i)}
	}

	for _, size := range []int{1, 2, 5, 10, 23, 50} {
		for index := 0; index < 30; index++ {
			d := Derive(records, State{PageIndex: index, PageSize: size})
			want := min(size, max(0, d.FilteredCount-index*size))
			assert.Len(t, d.Rows, want, "size=%d index=%d", size, index)
			assert.LessOrEqual(t, len(d.Rows), size)
		}
	}
}

func TestDerive_SecondPageOfThree(t *testing.T) {
	st := State{PageIndex: 1, PageSize: 2}
	st.Sort = SortSpec{Field: employee.FieldSalary, Direction: Ascending}
	d := Derive(sampleRecords(), st)
	require.Len(t, d.Rows, 1)
	assert.Equal(t, "Bo", d.Rows[0].Name)
	assert.Equal(t, 2, d.PageCount())
}

func TestDerive_DoesNotModifyInput(t *testing.T) {
	records := sampleRecords()
	st := DefaultState(10)
	st.Sort = SortSpec{Field: employee.FieldSalary, Direction: Descending}
	_ = Derive(records, st)
	assert.Equal(t, sampleRecords(), records)
}

func TestDerived_PageCount(t *testing.T) {
	assert.Equal(t, 0, Derived{State: State{PageSize: 10}}.PageCount())
	assert.Equal(t, 1, Derived{FilteredCount: 10, State: State{PageSize: 10}}.PageCount())
	assert.Equal(t, 3, Derived{FilteredCount: 21, State: State{PageSize: 10}}.PageCount())
}

func TestParseNumber(t *testing.T) {
	v, ok := parseNumber(" 42.5 ")
	assert.True(t, ok)
	assert.InDelta(t, 42.5, v, 1e-9)

	for _, s := range []string{"", "  ", "Ann", "NaN", "12abc", "inf", "INF", "+Inf", "-inf", "Infinity", "1e999"} {
		_, ok := parseNumber(s)
		assert.False(t, ok, "parseNumber(%q)", s)
	}
}

func indexOf(values []string, v string) int {
	for i, s := range values {
		if s == v {
			return i
		}
	}
	return -1
}
