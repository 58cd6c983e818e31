package vector

import (
	"errors"
	"fmt"
	"math"

	"github.com/viant/vec/search"
)

// ErrZeroMagnitude is returned when a cosine similarity or normalization
// involves a vector whose magnitude is zero.
var ErrZeroMagnitude = errors.New("vector: zero-magnitude vector")

// ErrDimensionMismatch is returned when two vectors of different lengths are
// combined.
var ErrDimensionMismatch = errors.New("vector: dimension mismatch")

// ErrNonFinite is returned when a vector or a result derived from it holds
// NaN or an infinity.
var ErrNonFinite = errors.New("vector: non-finite value")

// Finite reports whether every component of v is neither NaN nor infinite.
func Finite(v []float32) bool {
	for _, x := range v {
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return false
		}
	}
	return true
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// Magnitude returns the Euclidean norm of v.
func Magnitude(v []float32) float64 {
	if len(v) == 0 {
		return 0
	}
	return float64(search.Float32s(v).Magnitude())
}

// CosineSimilarity computes the cosine similarity between two vectors. It
// returns an error if the vectors have different lengths or if either vector
// has zero magnitude, and ErrNonFinite when NaN or an infinity reaches the
// computation. The result is clamped to [-1, 1].
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: cosine similarity %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, fmt.Errorf("vector: cosine similarity on empty vectors")
	}
	var dot, na2, nb2 float64
	for i := range a {
		va := float64(a[i])
		vb := float64(b[i])
		dot += va * vb
		na2 += va * va
		nb2 += vb * vb
	}
	if !finite(dot) || !finite(na2) || !finite(nb2) {
		return 0, fmt.Errorf("%w: cosine similarity overflow", ErrNonFinite)
	}
	if na2 == 0 || nb2 == 0 {
		return 0, fmt.Errorf("%w: cosine similarity undefined", ErrZeroMagnitude)
	}
	sim := dot / (math.Sqrt(na2) * math.Sqrt(nb2))
	if !finite(sim) {
		return 0, fmt.Errorf("%w: cosine similarity", ErrNonFinite)
	}
	return math.Max(-1, math.Min(1, sim)), nil
}

// L2Distance computes the Euclidean (L2) distance between two vectors. It
// returns an error if the vectors have different lengths.
func L2Distance(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: L2 distance %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	return float64(search.Float32s(a).EuclideanDistance(b)), nil
}
