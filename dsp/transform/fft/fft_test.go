package fft

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/signalkit/spectral/internal/testutil"
)

func almostEqualComplex(a, b complex128, tol float64) bool {
	return cmplx.Abs(a-b) <= tol
}

func naiveDFT(x []complex128, inverse bool) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	sign := -1.0
	if inverse {
		sign = 1.0
	}

	for k := 0; k < n; k++ {
		var sum complex128
		for j := 0; j < n; j++ {
			angle := sign * 2 * math.Pi * float64(k*j) / float64(n)
			sum += x[j] * complex(math.Cos(angle), math.Sin(angle))
		}

		if inverse {
			sum /= complex(float64(n), 0)
		}

		out[k] = sum
	}

	return out
}

func TestForwardMatchesNaiveDFT(t *testing.T) {
	sizes := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 15, 16, 21, 30, 35}

	for _, n := range sizes {
		x := make([]complex128, n)
		for i := range x {
			x[i] = complex(float64(i+1), float64(-i))
		}

		plan, err := NewPlan(n)
		if err != nil {
			t.Fatalf("NewPlan(%d): %v", n, err)
		}

		got := make([]complex128, n)
		if err := plan.Forward(got, x); err != nil {
			t.Fatalf("Forward(%d): %v", n, err)
		}

		want := naiveDFT(x, false)
		for k := range want {
			if !almostEqualComplex(got[k], want[k], 1e-8) {
				t.Errorf("size %d: Forward[%d] = %v, want %v", n, k, got[k], want[k])
			}
		}
	}
}

func TestInverseUndoesForward(t *testing.T) {
	sizes := []int{1, 2, 4, 6, 9, 14, 20}

	for _, n := range sizes {
		x := make([]complex128, n)
		for i := range x {
			x[i] = complex(math.Sin(float64(i)), math.Cos(float64(i)*0.5))
		}

		plan, err := NewPlan(n)
		if err != nil {
			t.Fatalf("NewPlan(%d): %v", n, err)
		}

		freq := make([]complex128, n)
		if err := plan.Forward(freq, x); err != nil {
			t.Fatalf("Forward(%d): %v", n, err)
		}

		back := make([]complex128, n)
		if err := plan.Inverse(back, freq); err != nil {
			t.Fatalf("Inverse(%d): %v", n, err)
		}

		testutil.RequireComplexSliceNearlyEqual(t, back, x, 1e-8)
	}
}

func TestNewPlanRejectsNonPositiveSize(t *testing.T) {
	if _, err := NewPlan(0); err != ErrInvalidSize {
		t.Errorf("NewPlan(0) error = %v, want ErrInvalidSize", err)
	}

	if _, err := NewPlan(-4); err != ErrInvalidSize {
		t.Errorf("NewPlan(-4) error = %v, want ErrInvalidSize", err)
	}
}

func TestNewPlanAcceptsLargePrimeLength(t *testing.T) {
	// algo-fft's engine is not restricted to the small-radix/residual-bound
	// scheme a hand-rolled mixed-radix transform would need; a large prime
	// length should still produce a usable plan.
	large := 1031 // prime
	plan, err := NewPlan(large)
	if err != nil {
		t.Fatalf("NewPlan(%d): %v", large, err)
	}

	x := make([]complex128, large)
	for i := range x {
		x[i] = complex(float64(i%7), float64(-(i % 5)))
	}

	freq := make([]complex128, large)
	if err := plan.Forward(freq, x); err != nil {
		t.Fatalf("Forward(%d): %v", large, err)
	}

	back := make([]complex128, large)
	if err := plan.Inverse(back, freq); err != nil {
		t.Fatalf("Inverse(%d): %v", large, err)
	}

	testutil.RequireComplexSliceNearlyEqual(t, back, x, 1e-6)
}

func TestForwardRejectsLengthMismatch(t *testing.T) {
	plan, err := NewPlan(8)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}

	src := make([]complex128, 4)
	dst := make([]complex128, 8)

	if err := plan.Forward(dst, src); err != ErrSizeMismatch {
		t.Errorf("Forward with mismatched length error = %v, want ErrSizeMismatch", err)
	}
}

func TestShiftEvenLength(t *testing.T) {
	x := []complex128{0, 1, 2, 3, 4, 5}
	got := Shift(x)
	want := []complex128{3, 4, 5, 0, 1, 2}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Shift[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestShiftOddLength(t *testing.T) {
	x := []complex128{0, 1, 2, 3, 4}
	got := Shift(x)
	want := []complex128{3, 4, 0, 1, 2}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Shift[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestShiftRealMatchesComplex(t *testing.T) {
	xr := []float64{1, 2, 3, 4, 5}
	x := make([]complex128, len(xr))
	for i, v := range xr {
		x[i] = complex(v, 0)
	}

	gotReal := ShiftReal(xr)
	gotComplex := Shift(x)

	for i := range gotReal {
		if complex(gotReal[i], 0) != gotComplex[i] {
			t.Errorf("ShiftReal[%d] = %v, want %v", i, gotReal[i], real(gotComplex[i]))
		}
	}
}
