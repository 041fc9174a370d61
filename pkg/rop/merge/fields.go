package merge

import (
	"fmt"
	"strings"
)

// FieldError is a single failed check on a named field.
type FieldError struct {
	Field             string         `yaml:"field"`
	Message           string         `yaml:"message"`
	TranslationKey    string         `yaml:"translation_key,omitempty"`
	TranslationValues map[string]any `yaml:"translation_values,omitempty"`
}

// FieldErrors is a Mergeable list of field failures.
type FieldErrors []FieldError

// Field builds a single-entry FieldErrors.
func Field(field, message, translationKey string) FieldErrors {
	return FieldErrors{{
		Field:          field,
		Message:        message,
		TranslationKey: translationKey,
		TranslationValues: map[string]any{
			"field": field,
		},
	}}
}

func (fe FieldErrors) Combine(other FieldErrors) FieldErrors {
	return Concat(fe, other)
}

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(fe))
	for _, err := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (fe FieldErrors) Has(field string) bool {
	for _, err := range fe {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (fe FieldErrors) Get(field string) []string {
	var messages []string
	for _, err := range fe {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields lists distinct field names in first-seen order.
func (fe FieldErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range fe {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Messages drops field names, keeping only the reasons in order.
func (fe FieldErrors) Messages() Messages {
	out := make(Messages, 0, len(fe))
	for _, err := range fe {
		out = append(out, err.Message)
	}
	return out
}
