package mathutil

import (
	"errors"
	"math"
	"testing"
)

func TestEuclideanMod(t *testing.T) {
	cases := []struct {
		name string
		n, d float64
		want float64
	}{
		{"positive", 5, 3, 2},
		{"positive even", 10, 4, 2},
		{"negative numerator", -5, 3, 1},
		{"negative numerator even", -10, 4, 2},
		{"negative denominator", 5, -3, 2},
		{"both negative", -5, -3, -5},
		{"exact multiple", 9, 3, 0},
		{"fractional", 5.5, 2, 1.5},
		{"negative fractional", -0.5, 2, 1.5},
		{"numerator smaller", 2, 7, 2},
	}

	for _, tc := range cases {
		got, err := EuclideanMod(tc.n, tc.d)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: EuclideanMod(%v, %v) = %v, want %v", tc.name, tc.n, tc.d, got, tc.want)
		}
	}
}

// TestEuclideanMod_ShiftRule checks the truncate-then-shift rule over a grid
// including negative denominators, where the result may leave [0, |d|)
func TestEuclideanMod_ShiftRule(t *testing.T) {
	for n := -12.0; n <= 12; n += 0.75 {
		for _, d := range []float64{-7, -2.5, -1, 1, 2.5, 7} {
			got, err := EuclideanMod(n, d)
			if err != nil {
				t.Fatalf("EuclideanMod(%v, %v): %v", n, d, err)
			}
			r := math.Mod(n, d)
			want := r
			if r < 0 {
				want = r + d
			}
			if got != want {
				t.Errorf("EuclideanMod(%v, %v) = %v, want %v", n, d, got, want)
			}
		}
	}
}

func TestEuclideanMod_Zero(t *testing.T) {
	for _, n := range []float64{0, 5, -5, math.Inf(1), math.NaN()} {
		_, err := EuclideanMod(n, 0)
		if !errors.Is(err, ErrZeroModulus) {
			t.Errorf("EuclideanMod(%v, 0): expected ErrZeroModulus, got %v", n, err)
		}
	}
	if ErrZeroModulus.Error() != "Modulus cannot be zero" {
		t.Errorf("unexpected message %q", ErrZeroModulus.Error())
	}
}

func TestEuclideanMod_Float32(t *testing.T) {
	got, err := EuclideanMod(float32(-5), float32(3))
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Errorf("float32: got %v, want 1", got)
	}
}
