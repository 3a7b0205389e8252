// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var patientNumberPattern = regexp.MustCompile(`^SBC-\d{6}$`)

// Japanese format error shown inline when a patient number fails validation.
const PatientNumberFormatError = "診察券番号の形式が正しくありません（例: SBC-123456）"

// ValidatePatientNumber checks the clinic-issued identifier format
// SBC-###### (case-insensitive).
func ValidatePatientNumber(patientNumber string) bool {
	normalized := NormalizePatientNumber(patientNumber)
	return patientNumberPattern.MatchString(normalized)
}

// NormalizePatientNumber uppercases and trims a patient number for lookup.
func NormalizePatientNumber(patientNumber string) string {
	return strings.ToUpper(strings.TrimSpace(patientNumber))
}

// ValidatePhone checks if a phone number is in a valid format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows + prefix followed by 7-15 digits, or a leading 0 (domestic)
	regex := `^(\+?[1-9]\d{1,14}|0\d{9,10})$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}
