package polynomial

import (
	"math"
	"testing"
)

func vecClose(t *testing.T, name string, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: len = %d, want %d (%v vs %v)", name, len(got), len(want), got, want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > tol {
			t.Errorf("%s[%d] = %v, want %v", name, i, got[i], want[i])
		}
	}
}

func TestRatComposLPToLP(t *testing.T) {
	// H(s) = 1/(s+1), LP->LP with s <- r*s.
	b := []float64{1, 0}
	a := []float64{1, 1}
	const r = 0.5

	B, A := RatCompos(b, a, []float64{0, r}, []float64{1, 0})
	vecClose(t, "B", B, []float64{1, 0}, 1e-12)
	vecClose(t, "A", A, []float64{1, r}, 1e-12)
}

func TestBilinearFirstOrder(t *testing.T) {
	// H(s) = 1/(s+1), bilinear with k=1 gives H(z) = (1+z^-1)/2.
	b := []float64{1, 0}
	a := []float64{1, 1}

	B, A := Bilinear(b, a, 1)
	vecClose(t, "B", B, []float64{1, 1}, 1e-12)
	vecClose(t, "A", A, []float64{2, 0}, 1e-12)
}

func TestRatComposBandpassDoublesOrder(t *testing.T) {
	// order-1 prototype through the order-2 BP substitution doubles to order 2.
	b := []float64{1, 0}
	a := []float64{1, 1}

	wl, wh := 0.5, 2.0
	c := []float64{wl * wh, 0, 1}
	d := []float64{0, wh - wl, 0}

	B, A := RatCompos(b, a, c, d)
	if len(B) != 3 || len(A) != 3 {
		t.Fatalf("expected order-2 result, got len(B)=%d len(A)=%d", len(B), len(A))
	}
}
