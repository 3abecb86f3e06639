package application

import (
	"fmt"
	"strings"

	"notedock/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
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

// ValidateRequiredSegments checks that a segment list was supplied at all
func ValidateRequiredSegments(fieldName string, segments []string) error {
	if len(segments) == 0 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "filePath" -> "file path")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"filePath": "file path",
		"nodeName": "node name",
		"mdName":   "document name",
		"mdPath":   "document path",
		"paths":    "paths",
		"content":  "content",
		"fileName": "file name",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateDocumentPath runs the content path rules for a document path
func ValidateDocumentPath(p string) error {
	return domain.ValidatePath(p, domain.PathDocument)
}

// ValidateSegments checks a sidebar path and every name in it
func ValidateSegments(fieldName string, segments []string) error {
	if err := ValidateRequiredSegments(fieldName, segments); err != nil {
		return err
	}
	return domain.ValidateSegments(segments)
}
