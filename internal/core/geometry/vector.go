// Package geometry holds the vector arithmetic shared by levels: unit vectors,
// angles and integer conversions over n-dimensional slices.
package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Norm returns the Euclidean length of v.
func Norm(v []float64) float64 {
	return floats.Norm(v, 2)
}

// Normalize returns v scaled to unit length. A zero vector has no direction
// and yields ErrZeroVector.
func Normalize(v []float64) ([]float64, error) {
	n := Norm(v)
	if n == 0 {
		return nil, ErrZeroVector
	}
	return floats.ScaleTo(make([]float64, len(v)), 1/n, v), nil
}

// AngleBetween returns the angle in radians between v1 and v2, in [0, π].
// The cosine is clipped to [-1, 1] before acos so rounding cannot push it
// outside the domain.
func AngleBetween(v1, v2 []float64) (float64, error) {
	if len(v1) != len(v2) {
		return 0, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(v1), len(v2))
	}
	u1, err := Normalize(v1)
	if err != nil {
		return 0, err
	}
	u2, err := Normalize(v2)
	if err != nil {
		return 0, err
	}
	cos := floats.Dot(u1, u2)
	return math.Acos(math.Max(-1, math.Min(1, cos))), nil
}

// ToIntList truncates every element toward zero.
func ToIntList(arr []float64) []int {
	out := make([]int, len(arr))
	for i, v := range arr {
		out[i] = int(v)
	}
	return out
}

// ToFloats converts integer components to float64 for the float helpers.
func ToFloats(v []int) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

// Add returns a + b elementwise.
func Add(a, b []int) ([]int, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}
	out := make([]int, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out, nil
}

// Sub returns a - b elementwise.
func Sub(a, b []int) ([]int, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}
	out := make([]int, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out, nil
}

// Equal reports whether a and b have the same length and components.
func Equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
