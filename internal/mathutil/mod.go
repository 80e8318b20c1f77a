// Package mathutil provides small numeric helpers shared by the geometry packages
package mathutil

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrZeroModulus is returned when the denominator of a modulus is zero
var ErrZeroModulus = errors.New("Modulus cannot be zero")

// EuclideanMod returns numerator mod denominator for floating-point values.
// The truncating remainder is shifted by the denominator once when negative,
// so a negative denominator can still yield a negative result:
//
//	EuclideanMod(-5, 3)  ==  1
//	EuclideanMod(-5, -3) == -5
func EuclideanMod[T constraints.Float](numerator, denominator T) (T, error) {
	if denominator == 0 {
		return 0, ErrZeroModulus
	}
	r := T(math.Mod(float64(numerator), float64(denominator)))
	if r < 0 {
		return r + denominator, nil
	}
	return r, nil
}
