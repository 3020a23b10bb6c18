// pkg/wheel_err/wrap.go

package wheel_err

import (
	cerr "github.com/cockroachdb/errors"
)

// WrapValidationError attaches a stack and a hint; nil stays nil.
func WrapValidationError(err error) error {
	return cerr.WithHint(cerr.WithStack(err), "validation failed")
}

// WrapConfigError classifies a configuration failure and keeps the stack of the cause.
func WrapConfigError(err error) error {
	if err == nil {
		return nil
	}
	return NewValidationError("invalid configuration", cerr.WithStack(err),
		"Run 'wheel --help' to see accepted flag values",
		"Check WHEEL_* environment variables for stale values",
	)
}
