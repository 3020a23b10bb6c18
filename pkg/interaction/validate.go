// pkg/interaction/validate.go
package interaction

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ValidateNonEmpty ensures the input is not empty.
func ValidateNonEmpty(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("empty input detected, please enter valid text")
	}
	return nil
}

// ValidateIntInRange returns a validator accepting base-10 integers within [min, max].
func ValidateIntInRange(min, max int) func(string) error {
	return func(input string) error {
		n, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			return fmt.Errorf("%q is not a whole number, please specify between %d-%d", input, min, max)
		}
		if n < min || n > max {
			return fmt.Errorf("invalid parameter range, please specify between %d-%d", min, max)
		}
		return nil
	}
}
