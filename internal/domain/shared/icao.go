package shared

import "strings"

// ValidICAO reports whether code looks like an ICAO airport identifier:
// 3 or 4 characters, uppercase letters and digits only. Three-character
// codes cover the handful of US fields still published without the K
// prefix.
func ValidICAO(code string) bool {
	if len(code) < 3 || len(code) > 4 {
		return false
	}
	for _, c := range code {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// NormalizeICAO uppercases and trims an airport code so lookups are
// insensitive to user input casing.
func NormalizeICAO(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NewICAO validates and normalizes an airport code
func NewICAO(code string) (string, error) {
	normalized := NormalizeICAO(code)
	if !ValidICAO(normalized) {
		return "", NewValidationError("icao", "malformed airport code: "+code)
	}
	return normalized, nil
}
