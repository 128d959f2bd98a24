package utils

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhoneNumber strips everything except digits and leading zeros so
// the unique phone index compares like numbers with like.
func NormalizePhoneNumber(phoneNumber string) string {
	digits := nonDigits.ReplaceAllString(phoneNumber, "")
	return strings.TrimLeft(digits, "0")
}

// ValidatePhoneNumber accepts 7 to 15 digits after normalization.
func ValidatePhoneNumber(phoneNumber string) bool {
	cleaned := NormalizePhoneNumber(phoneNumber)
	return len(cleaned) >= 7 && len(cleaned) <= 15
}
