package domain

import (
	"errors"
	"fmt"
)

var (
	ErrFlightNotFound  = errors.New("flight not found")
	ErrBookingNotFound = errors.New("booking not found")
)

// ValidationError reports malformed caller input. Always recoverable by
// correcting the request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InsufficientSeatsError rejects a booking asking for more seats than the
// flight has left. Remaining carries the live count for the caller's message.
type InsufficientSeatsError struct {
	FlightID  int64
	Requested int
	Remaining int
}

func (e *InsufficientSeatsError) Error() string {
	return fmt.Sprintf("not enough seats on flight %d: requested %d, only %d left", e.FlightID, e.Requested, e.Remaining)
}

// StorageError wraps a persistence failure. It is terminal for the operation
// but never leaves a booking without its seat debit: the engine compensates
// any applied partial mutation before returning one.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
