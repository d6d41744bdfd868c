package conv

import (
	"fmt"
	"math"
)

// MulInt64 multiplies a and b, reporting overflow instead of wrapping.
// Both operands must be nonnegative; grid extents always are.
func MulInt64(a, b int64) (int64, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("integer overflow: negative operand in %d * %d", a, b)
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > math.MaxInt64/b {
		return 0, fmt.Errorf("integer overflow: %d * %d exceeds int64", a, b)
	}
	return a * b, nil
}

// Int64ToInt converts int64 to int safely.
func Int64ToInt(v int64) (int, error) {
	if v > int64(math.MaxInt) || v < int64(math.MinInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int", v)
	}
	return int(v), nil
}

// FloatToInt64 converts a float64 to int64, reporting values outside the
// exactly-representable int64 range instead of truncating them silently.
func FloatToInt64(v float64) (int64, error) {
	if math.IsNaN(v) {
		return 0, fmt.Errorf("integer overflow: NaN cannot be converted to int64")
	}
	// 2^63 is the first float64 at or above MaxInt64; the comparison is exact.
	if v >= math.Ldexp(1, 63) || v < -math.Ldexp(1, 63) {
		return 0, fmt.Errorf("integer overflow: %g cannot be converted to int64", v)
	}
	return int64(v), nil
}
