package utils

import "testing"

func TestValidatePatientNumber(t *testing.T) {
	valid := []string{"SBC-123456", "sbc-123456", "  SBC-123456  "}
	for _, input := range valid {
		if !ValidatePatientNumber(input) {
			t.Errorf("%q should be valid", input)
		}
	}

	invalid := []string{"", "SBC-12345", "SBC-1234567", "ABC-123456", "SBC123456", "SBC-12345a"}
	for _, input := range invalid {
		if ValidatePatientNumber(input) {
			t.Errorf("%q should be invalid", input)
		}
	}
}

func TestNormalizePatientNumber(t *testing.T) {
	if got := NormalizePatientNumber("  sbc-123456 "); got != "SBC-123456" {
		t.Errorf("normalized = %q", got)
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"09012345678", "090-1234-5678", "+819012345678", "03-1234-5678"}
	for _, input := range valid {
		if !ValidatePhone(input) {
			t.Errorf("%q should be valid", input)
		}
	}

	invalid := []string{"", "abc", "1", "++819012345678", "0123"}
	for _, input := range invalid {
		if ValidatePhone(input) {
			t.Errorf("%q should be invalid", input)
		}
	}
}
