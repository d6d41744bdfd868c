package geom

import (
	"math"
	"unsafe"
)

// Float is the numeric capability required by the volume pipeline.
// Both backends run the identical generic code; they differ only in the
// rounding behavior of T.
type Float interface {
	~float32 | ~float64
}

// Floor returns the largest integer value less than or equal to v,
// computed in float64 and converted back to T.
func Floor[T Float](v T) T {
	return T(math.Floor(float64(v)))
}

// Ceil returns the smallest integer value greater than or equal to v,
// computed in float64 and converted back to T.
func Ceil[T Float](v T) T {
	return T(math.Ceil(float64(v)))
}

// Inf returns positive infinity when sign >= 0, negative infinity otherwise.
func Inf[T Float](sign int) T {
	return T(math.Inf(sign))
}

// BitSize returns the width of T in bits (32 or 64). It is used by parsers
// to round decimal input directly to the active precision instead of
// double-rounding through float64.
func BitSize[T Float]() int {
	var v T
	return int(unsafe.Sizeof(v)) * 8
}
