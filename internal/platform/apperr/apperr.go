// Package apperr declares the sentinel errors shared by the service layer.
// Services wrap them with fmt.Errorf("%w: ...") so that handlers can map the
// error class to an HTTP status while keeping the human-readable reason.
package apperr

import "errors"

var (
	// ErrNotFound is returned when a required lookup yields no match
	// (unknown station number, address, name pair, city, or a missing
	// medical record for a matched person).
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is returned when a create targets an existing identity
	// key, or an update would leave the record byte-for-byte identical.
	ErrConflict = errors.New("resource already exists")

	// ErrInvalidFormat is returned when a stored birthdate cannot be
	// parsed against the MM/dd/yyyy format.
	ErrInvalidFormat = errors.New("invalid format")
)
