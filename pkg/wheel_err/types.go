// pkg/wheel_err/types.go

package wheel_err

import "errors"

// ErrInputClosed is the cause of every CategoryInput error.
var ErrInputClosed = errors.New("input stream closed")

// IsInputClosed reports whether err was caused by the input stream ending.
func IsInputClosed(err error) bool {
	return errors.Is(err, ErrInputClosed)
}
