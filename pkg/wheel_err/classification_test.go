package wheel_err

import (
	"context"
	"errors"
	"fmt"
	"testing"

	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestGetExitCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain_error", err: errors.New("boom"), want: 1},
		{name: "validation", err: NewValidationError("bad flag", nil), want: 2},
		{name: "input_closed", err: NewInputClosedError("option count"), want: 2},
		{name: "internal", err: NewInternalError("panic", errors.New("x")), want: 3},
		{name: "user_cancelled", err: NewUserCancelledError("spin", context.Canceled), want: 130},
		{name: "bare_context_canceled", err: fmt.Errorf("reading: %w", context.Canceled), want: 130},
		{name: "wrapped_classified", err: cerr.Wrap(NewInputClosedError("Option 2"), "collect"), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestClassifiedError_ErrorFormatting(t *testing.T) {
	t.Parallel()
	err := NewValidationError("invalid configuration", errors.New("rotations too high"), "lower --rotations")

	msg := err.Error()
	assert.Contains(t, msg, "invalid configuration")
	assert.Contains(t, msg, "Cause: rotations too high")
	assert.Contains(t, msg, "How to fix:")
	assert.Contains(t, msg, "1. lower --rotations")
}

func TestNewInputClosedError(t *testing.T) {
	t.Parallel()
	err := NewInputClosedError("Option 3")

	assert.True(t, IsInputClosed(err))
	assert.Equal(t, CategoryInput, CategoryOf(err))
	assert.Contains(t, err.Error(), "Option 3")
	assert.False(t, IsInputClosed(errors.New("other")))
}

func TestCategoryOf_Unclassified(t *testing.T) {
	t.Parallel()
	assert.Equal(t, CategorySystem, CategoryOf(errors.New("plain")))
	assert.Equal(t, "system", CategoryOf(nil).String())
	assert.Equal(t, "validation", CategoryValidation.String())
}
