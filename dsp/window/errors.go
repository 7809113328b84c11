package window

import (
	"errors"
	"fmt"
)

// ErrInvalidLength is returned when a window is requested with fewer than
// two coefficients. The symmetric formulas divide by n-1.
var ErrInvalidLength = errors.New("window: length must be > 1")

func validateLength(size int) error {
	if size <= 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, size)
	}
	return nil
}
