package motion

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidFrameDelta is returned when a step is given a negative or
// non-finite frame time. The state is left untouched.
var ErrInvalidFrameDelta = errors.New("invalid frame delta")

// CheckDelta reports whether dt is usable as a frame time.
func CheckDelta(dt float64) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return fmt.Errorf("dt=%v: %w", dt, ErrInvalidFrameDelta)
	}
	return nil
}
