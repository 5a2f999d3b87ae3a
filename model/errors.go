package model

import "errors"

var (
	// ErrNotFound is returned when an update or delete targets an id
	// that does not exist (zero rows affected at the store level).
	ErrNotFound = errors.New("record not found")

	// ErrValidation is returned for malformed dates/times, unknown
	// search fields and out-of-range input. Wrap it with fmt.Errorf
	// so callers can match with errors.Is.
	ErrValidation = errors.New("validation failed")
)
