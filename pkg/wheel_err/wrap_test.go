package wheel_err

import (
	"errors"
	"testing"

	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapValidationError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, WrapValidationError(nil))

	original := errors.New("field 'rotations' is out of range")
	wrapped := WrapValidationError(original)
	require.Error(t, wrapped)
	assert.True(t, errors.Is(wrapped, original))
	assert.Contains(t, cerr.FlattenHints(wrapped), "validation failed")
}

func TestWrapConfigError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, WrapConfigError(nil))

	original := errors.New("unknown output format")
	wrapped := WrapConfigError(original)
	require.Error(t, wrapped)
	assert.Equal(t, 2, GetExitCode(wrapped))
	assert.True(t, errors.Is(wrapped, original))
}
