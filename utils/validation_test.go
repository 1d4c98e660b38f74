package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	valid := []string{"+97699112233", "99112233", "+1 (415) 555-0100"}
	for _, p := range valid {
		if !ValidatePhone(p) {
			t.Fatalf("expected %q to be valid", p)
		}
	}

	invalid := []string{"", "abc", "0", "+"}
	for _, p := range invalid {
		if ValidatePhone(p) {
			t.Fatalf("expected %q to be invalid", p)
		}
	}
}

func TestGenerateRandomString(t *testing.T) {
	a := GenerateRandomString(16)
	b := GenerateRandomString(16)
	if len(a) != 16 || len(b) != 16 {
		t.Fatalf("expected length 16, got %d and %d", len(a), len(b))
	}
	if a == b {
		t.Fatal("expected two random strings to differ")
	}
}
