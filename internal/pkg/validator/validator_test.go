package validator

import (
	"testing"
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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-06-03"); !ok {
		t.Error("IsValidDate(2024-06-03) = false, want true")
	}
	for _, input := range []string{"2024-6-3", "03-06-2024", "2024-13-01", "not-a-date", ""} {
		if _, ok := IsValidDate(input); ok {
			t.Errorf("IsValidDate(%q) = true, want false", input)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{
		"2024-06-03T09:00:00Z",
		"2024-06-03T09:00:00+02:00",
		"2024-06-03T09:00:00.123Z",
	}
	for _, input := range valid {
		if _, ok := IsValidDateTime(input); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", input)
		}
	}
	for _, input := range []string{"2024-06-03", "09:00", "yesterday", ""} {
		if _, ok := IsValidDateTime(input); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", input)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"+34 600 111 222", "600-111-222", "(555) 123-4567", "1234567"}
	invalid := []string{"123", "phone", "12345678901234567890", ""}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}

func TestIsValidMoney(t *testing.T) {
	valid := []string{"0", "9.90", "1234.56"}
	for _, amount := range valid {
		if _, ok := IsValidMoney(amount); !ok {
			t.Errorf("IsValidMoney(%q) = false, want true", amount)
		}
	}
	for _, amount := range []string{"-1", "abc", ""} {
		if _, ok := IsValidMoney(amount); ok {
			t.Errorf("IsValidMoney(%q) = true, want false", amount)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "email", Message: "email format is invalid"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap returned %d entries, want 2", len(m))
	}
	if m["name"] != "name is required" {
		t.Errorf("ToMap[name] = %q", m["name"])
	}
	if errs.Error() == "" {
		t.Error("Error() returned empty string")
	}
}
