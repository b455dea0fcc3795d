// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Database errors.
	ErrNotFound          = errors.New("not found")
	ErrDatabaseCorrupted = errors.New("database corrupted")

	// Input errors. Always detected before any inference call.
	ErrInvalidInput = errors.New("invalid input")

	// Provider errors.
	ErrProviderFailure = errors.New("inference provider failure")
	ErrRateLimit       = errors.New("rate limit exceeded")

	// Contract errors. The provider returned data that cannot be
	// reconciled with the declared schema; distinct from "no data".
	ErrSchemaViolation = errors.New("response violates declared schema")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRetryable determines if an error should trigger a retry. Provider
// and transport failures are retryable; schema violations are contract
// breaches and never are.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrSchemaViolation) || errors.Is(err, ErrInvalidInput) {
		return false
	}

	if errors.Is(err, ErrRateLimit) ||
		errors.Is(err, ErrProviderFailure) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}
