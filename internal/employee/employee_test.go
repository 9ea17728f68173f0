package employee

import "testing"

func TestRecordText(t *testing.T) {
	r := Record{ID: 7, Name: "Ann", Salary: 5000.5, Age: 30}

	tests := []struct {
		field Field
		want  string
	}{
		{FieldID, "7"},
		{FieldName, "Ann"},
		{FieldSalary, "5000.5"},
		{FieldAge, "30"},
		{FieldNone, ""},
	}
	for _, tt := range tests {
		if got := r.Text(tt.field); got != tt.want {
			t.Fatalf("Text(%v) = %q, want %q", tt.field, got, tt.want)
		}
	}
}

func TestSearchTextExcludesAge(t *testing.T) {
	r := Record{ID: 1, Name: "Ann", Salary: 5000, Age: 99}
	if got := r.SearchText(); got != "1Ann5000" {
		t.Fatalf("SearchText = %q, want %q", got, "1Ann5000")
	}
}

func TestParseField(t *testing.T) {
	tests := []struct {
		in   string
		want Field
	}{
		{"", FieldNone},
		{"id", FieldID},
		{" Name ", FieldName},
		{"employee_salary", FieldSalary},
		{"AGE", FieldAge},
	}
	for _, tt := range tests {
		got, err := ParseField(tt.in)
		if err != nil {
			t.Fatalf("ParseField(%q) returned error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseField(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseField("profile_image"); err == nil {
		t.Fatalf("ParseField(profile_image) returned nil error, want error")
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(9); got != "9" {
		t.Fatalf("FormatNumber(9) = %q, want 9", got)
	}
	if got := FormatNumber(80.25); got != "80.25" {
		t.Fatalf("FormatNumber(80.25) = %q, want 80.25", got)
	}
}
