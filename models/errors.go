package models

import "fmt"

// ValidationError reports a required request field that was missing or empty
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s is required", MessageInvalidRequest, e.Field)
}
