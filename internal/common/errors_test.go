package common

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"rate limit", ErrRateLimit, true},
		{"provider failure", ErrProviderFailure, true},
		{"wrapped provider failure", fmt.Errorf("call failed: %w", ErrProviderFailure), true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"schema violation", ErrSchemaViolation, false},
		{"wrapped schema violation", fmt.Errorf("%w: missing field", ErrSchemaViolation), false},
		{"invalid input", ErrInvalidInput, false},
		{"not found", ErrNotFound, false},
		{"plain error", errors.New("something else"), false},
		{"retryable wrapper true", &RetryableError{Err: errors.New("transient"), Retryable: true}, true},
		{"retryable wrapper false", &RetryableError{Err: errors.New("fatal"), Retryable: false}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestUserError(t *testing.T) {
	inner := errors.New("boom")
	err := NewUserError("something went wrong", inner)

	assert.Contains(t, err.Error(), "something went wrong")
	assert.ErrorIs(t, err, inner)

	bare := NewUserError("just a message", nil)
	assert.Equal(t, "just a message", bare.Error())
}
