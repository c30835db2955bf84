package core

import "math"

// DefaultTolerance is the epsilon used when no tuned tolerance applies
const DefaultTolerance Tolerance = 1e-10

// Tolerance is an epsilon for comparing floating point values.
// Values closer than the epsilon compare as equal.
type Tolerance float64

// Compare returns -1 if a < b, +1 if a > b and 0 if they are within the tolerance
func (tol Tolerance) Compare(a, b float64) int {
	diff := a - b
	if math.Abs(diff) <= float64(tol) {
		return 0
	}
	if diff < 0 {
		return -1
	}
	return 1
}

// IsZero reports whether x is zero within the tolerance
func (tol Tolerance) IsZero(x float64) bool {
	return tol.Compare(x, 0) == 0
}

// Valid reports whether the tolerance is a finite, non-negative epsilon
func (tol Tolerance) Valid() bool {
	return isFinite(float64(tol)) && tol >= 0
}

// Compare compares a and b using DefaultTolerance
func Compare(a, b float64) int {
	return DefaultTolerance.Compare(a, b)
}
