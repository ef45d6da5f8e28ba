package services

import (
	"errors"
	"strings"

	"clinic-appointments/internal/models"
)

// ValidationError lists every input field that failed a format check.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

// IsNotFound reports whether err means the requested record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, models.ErrAppointmentNotFound) || errors.Is(err, models.ErrDermatologistNotFound)
}
