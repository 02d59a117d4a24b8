package utils

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// Detect potentially dangerous characters - more focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

const maxStationNameLength = 200

// ValidateStationName checks a selected station name. Empty names are allowed
// and mean "not selected".
func ValidateStationName(name string) error {
	if name == "" {
		return nil
	}

	if utf8.RuneCountInString(name) > maxStationNameLength {
		return errors.New("station name too long (max 200 characters)")
	}

	if !utf8.ValidString(name) {
		return errors.New("station name is not valid UTF-8")
	}

	if dangerousPattern.MatchString(name) {
		return errors.New("station name contains invalid characters")
	}

	return nil
}

// ValidateLatitude validates latitude values
func ValidateLatitude(lat float64) error {
	if lat < -90.0 || lat > 90.0 {
		return errors.New("latitude must be between -90 and 90")
	}
	return nil
}

// ValidateLongitude validates longitude values
func ValidateLongitude(lon float64) error {
	if lon < -180.0 || lon > 180.0 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

// SanitizeInput removes HTML tags and surrounding whitespace
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(sanitized)
}

// ValidateSelectionParams validates the from/to pair of a route request
func ValidateSelectionParams(from, to string) map[string][]string {
	fieldErrors := make(map[string][]string)

	if err := ValidateStationName(from); err != nil {
		fieldErrors["from"] = append(fieldErrors["from"], err.Error())
	}

	if err := ValidateStationName(to); err != nil {
		fieldErrors["to"] = append(fieldErrors["to"], err.Error())
	}

	return fieldErrors
}
