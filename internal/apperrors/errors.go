package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnbalanced indicates that a journal entry's debit and credit totals differ.
var ErrUnbalanced = errors.New("journal entry is not balanced")

// ErrInsufficientStock indicates that an inventory exit exceeds the available stock.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrConflict indicates that the operation conflicts with the current state of the resource.
var ErrConflict = errors.New("operation conflicts with current state")

// ErrInternal indicates an unexpected internal failure whose details must not leak.
var ErrInternal = errors.New("internal error")

// AppError wraps a lower-level failure with an HTTP-ish code and a message
// that is safe to log. Repositories return these for infrastructure errors.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(_, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
