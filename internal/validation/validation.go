// Package validation holds the required-field checks shared by the catalog
// and contact services. Checks are pure: they never mutate the payload.
package validation

import (
	"fmt"
	"strings"
)

// Error reports a payload field that failed validation. It surfaces at the
// HTTP boundary as a 400.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Required fails when value is empty or whitespace-only.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &Error{Field: field, Reason: "is required"}
	}
	return nil
}
