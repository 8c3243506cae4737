package services

import (
	"errors"
	"fmt"
)

// Typed failures surfaced by the booking and lifecycle layer. Controllers map
// these to HTTP status codes in utils.RespondWithServiceError; nothing below
// this layer returns an unstructured error for a business-rule failure.
var (
	// ErrInvalidTransition is returned when a status change violates the
	// reservation or order transition graph. The stored record is unchanged.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNotFound is returned when a reservation code, order number or id
	// does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrSlotFull is returned when the requested party no longer fits into
	// the slot's remaining capacity.
	ErrSlotFull = errors.New("time slot is fully booked")

	// ErrStoreUnavailable wraps backing-store failures. This layer does not
	// retry; callers decide whether to degrade.
	ErrStoreUnavailable = errors.New("reservation store unavailable")
)

// ValidationError reports a bad input shape or range, e.g. a malformed date,
// an unknown time slot or a party size out of bounds.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
