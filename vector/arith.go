package vector

import (
	"fmt"
	"math"
)

// Add accumulates src into dst elementwise.
func Add(dst, src []float32) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: add %d vs %d", ErrDimensionMismatch, len(dst), len(src))
	}
	for i, v := range src {
		dst[i] += v
	}
	return nil
}

// Scale multiplies every component of v by s in place.
func Scale(v []float32, s float32) {
	for i := range v {
		v[i] *= s
	}
}

// Normalize scales v in place to unit length.
func Normalize(v []float32) error {
	m := Magnitude(v)
	if m == 0 {
		return fmt.Errorf("%w: cannot normalize", ErrZeroMagnitude)
	}
	if math.IsInf(m, 0) || math.IsNaN(m) {
		return fmt.Errorf("%w: cannot normalize", ErrNonFinite)
	}
	Scale(v, float32(1/m))
	return nil
}
