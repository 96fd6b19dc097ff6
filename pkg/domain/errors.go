package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAccountID signals a missing or non-positive account identifier.
	ErrInvalidAccountID = errors.New("account ID must be a positive number")
	// ErrAccountNotFound signals the account row does not exist.
	ErrAccountNotFound = errors.New("account not found")
	// ErrCustomerNotFound signals the customer row does not exist.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrCardXrefNotFound signals no card cross-reference row exists for the account.
	ErrCardXrefNotFound = errors.New("card cross-reference not found")
	// ErrNotFound is the generic mapping target for repository lookups that miss.
	// Services wrap it into one of the flow-specific sentinels above.
	ErrNotFound = errors.New("resource not found")
	// ErrValidation is the match target for ValidationError via errors.Is.
	ErrValidation = errors.New("validation error")
)

// ValidationError carries the message of the first update rule a request
// violated. Rules are checked in a fixed order and checking stops at the
// first failure, so there is always exactly one message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is lets callers match any validation failure with errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
