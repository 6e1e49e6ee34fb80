package application

import (
	"errors"

	"github.com/example/classroom-reservation/internal/booking"
)

var (
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("application: not found")
	// ErrConflict is returned when a reservation request overlaps an existing booking.
	ErrConflict = errors.New("application: reservation conflict")
)

// ValidationError captures field level validation issues that callers can surface to users.
type ValidationError struct {
	// Reason carries the validator's rejection class when the error came
	// from a reservation request; empty for other field errors. Transport
	// code keys status mapping off it rather than off message text.
	Reason booking.Reason

	FieldErrors map[string]string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if v == nil {
		return ""
	}
	return "validation failed"
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// add records a field level validation error.
func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}
