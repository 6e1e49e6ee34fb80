package persistence

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("persistence: not found")
	// ErrDuplicate is returned when an insert collides with an existing key.
	ErrDuplicate = errors.New("persistence: duplicate record")
	// ErrOverlap is returned when a reservation insert loses the transactional
	// overlap check against a concurrent booking for the same room and date.
	ErrOverlap = errors.New("persistence: overlapping reservation")
	// ErrConstraintViolation is returned when a row fails a schema check
	// constraint, such as a start time at or after the end time.
	ErrConstraintViolation = errors.New("persistence: constraint violation")
)
