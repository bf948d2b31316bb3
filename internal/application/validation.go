package application

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "advancedProfession" -> "advanced profession")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"id":                 "character ID",
		"name":               "name",
		"profession":         "profession",
		"advancedProfession": "advanced profession",
		"category":           "category",
		"grade":              "grade",
		"set":                "stat set",
		"index":              "index",
		"modifier":           "modifier",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ParseID parses a character ID from text.
// Returns a ValidationError if the text is not a positive integer.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, &ValidationError{
			Field:   "id",
			Message: fmt.Sprintf("invalid character ID: %q", value),
		}
	}
	return id, nil
}

// ValidateIndex checks that index addresses an element of a list of length n
func ValidateIndex(fieldName string, index, n int) error {
	if index < 0 || index >= n {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s %d out of range (have %d)", formatFieldName(fieldName), index, n),
		}
	}
	return nil
}
