package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrPatientNotFound   = errors.New("patient not found")
	ErrDietChartNotFound = errors.New("diet chart not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidAge        = errors.New("age must be a whole number")

	// ErrPartialCascade marks a patient delete whose diet charts were removed
	// but whose patient row was not.
	ErrPartialCascade = errors.New("diet charts removed but patient delete failed")
)

// FieldError reports a partial-update key that cannot be applied.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}
