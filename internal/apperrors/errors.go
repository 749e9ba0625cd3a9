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

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but lacks the required right.
var ErrForbidden = errors.New("forbidden")

// ErrAccountNotFound indicates an account (party) filter references a party that does not exist.
// It wraps ErrNotFound so generic not-found handling still applies.
var ErrAccountNotFound = fmt.Errorf("account not found: %w", ErrNotFound)

// ErrInvalidRange indicates an end date before the start date. It is rejected before querying.
var ErrInvalidRange = fmt.Errorf("invalid date range: %w", ErrValidation)

// ErrStoreUnavailable indicates the underlying transaction store query failed.
var ErrStoreUnavailable = errors.New("query failed")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
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

// StoreFailure wraps a store-layer error so callers can match it with ErrStoreUnavailable.
// Not-found and validation errors pass through unchanged.
func StoreFailure(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) || errors.Is(err, ErrDuplicate) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
