// Package safe narrows integers with range checks.
package safe

import (
	"fmt"
	"math"
)

// Uint32 narrows a signed integer to uint32, rejecting negatives and overflow.
func Uint32[T ~int | ~int32 | ~int64](v T) (uint32, error) {
	if v < 0 || int64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}
