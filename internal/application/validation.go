package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks that a string field holds more than whitespace.
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateListLabel checks a tree label for list segments.
// The label is printed inside the tree, so it must be a non-empty single line.
func ValidateListLabel(label string) error {
	if err := ValidateRequired("listLabel", label); err != nil {
		return err
	}
	if strings.ContainsAny(label, "\r\n") {
		return &ValidationError{
			Field:   "listLabel",
			Message: fmt.Sprintf("%s must fit on one line", formatFieldName("listLabel")),
		}
	}
	return nil
}

// formatFieldName turns a field identifier into the words used in messages
func formatFieldName(fieldName string) string {
	switch fieldName {
	case "path":
		return "file path"
	case "listLabel":
		return "list label"
	default:
		return fieldName
	}
}
