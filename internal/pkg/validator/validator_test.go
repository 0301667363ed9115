package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123E4567-E89B-12D3-A456-426614174000", // uppercase
	}
	invalid := []string{
		"123e4567e89b12d3a456426614174000",     // missing dashes
		"g23e4567-e89b-12d3-a456-426614174000", // invalid hex
		"123e4567-e89b-02d3-a456-426614174000", // invalid version
		"",                                     // empty
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestParseAndFormatDate(t *testing.T) {
	parsed, err := ParseDate("2025-03-10")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if !parsed.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", parsed, want)
	}
	if got := FormatDate(parsed); got != "2025-03-10" {
		t.Errorf("FormatDate = %q, want %q", got, "2025-03-10")
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"REMITTED", "UNREMITTED"}
	if !IsInSlice("REMITTED", slice) {
		t.Errorf("IsInSlice(REMITTED) = false, want true")
	}
	if IsInSlice("remitted", slice) {
		t.Errorf("IsInSlice(remitted) = true, want false")
	}
	if IsInSlice("", slice) {
		t.Errorf("IsInSlice(empty) = true, want false")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "limit", Message: "must not exceed 1000"},
		{Field: "skip", Message: "must be non-negative"},
	}
	if errs.Error() != "limit: must not exceed 1000; skip: must be non-negative" {
		t.Errorf("unexpected Error(): %q", errs.Error())
	}
	m := errs.ToMap()
	if m["limit"] != "must not exceed 1000" || m["skip"] != "must be non-negative" {
		t.Errorf("unexpected ToMap(): %v", m)
	}
}
