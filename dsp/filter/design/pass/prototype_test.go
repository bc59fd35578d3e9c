package pass

import (
	"math"
	"testing"
)

func TestButterworthPrototypeOrder2(t *testing.T) {
	b, a, ok := butterworthPrototype(2)
	if !ok {
		t.Fatal("butterworthPrototype(2) failed")
	}

	// Standard normalized 2nd-order Butterworth: s^2 + sqrt(2)*s + 1.
	wantA := []float64{1, math.Sqrt2, 1}
	for i := range wantA {
		if math.Abs(a[i]-wantA[i]) > 1e-9 {
			t.Errorf("a[%d] = %v, want %v", i, a[i], wantA[i])
		}
	}

	if math.Abs(b[0]-1) > 1e-9 || b[1] != 0 || b[2] != 0 {
		t.Errorf("b = %v, want [1,0,0]", b)
	}
}

func TestButterworthPrototypeOrder1(t *testing.T) {
	b, a, ok := butterworthPrototype(1)
	if !ok {
		t.Fatal("butterworthPrototype(1) failed")
	}

	if math.Abs(a[0]-1) > 1e-9 || math.Abs(a[1]-1) > 1e-9 {
		t.Errorf("a = %v, want [1,1]", a)
	}
	if math.Abs(b[0]-1) > 1e-9 {
		t.Errorf("b[0] = %v, want 1", b[0])
	}
}

func TestCheby1PrototypeOrder1RealPole(t *testing.T) {
	_, a, ok := cheby1Prototype(1, 1)
	if !ok {
		t.Fatal("cheby1Prototype(1, 1) failed")
	}

	eps := math.Sqrt(math.Pow(10, 0.1) - 1)
	wantA0 := 1 / eps

	if math.Abs(a[0]-wantA0) > 1e-6 {
		t.Errorf("a[0] = %v, want %v", a[0], wantA0)
	}
}

func TestCheby2PrototypeDCGainIsUnity(t *testing.T) {
	b, a, ok := cheby2Prototype(4, 40)
	if !ok {
		t.Fatal("cheby2Prototype(4, 40) failed")
	}

	// H(0) = b[0]/a[0] must be 1 (Chebyshev II has flat passband gain at DC).
	if math.Abs(b[0]/a[0]-1) > 1e-9 {
		t.Errorf("H(0) = %v, want 1", b[0]/a[0])
	}
}

func TestEllipticPrototypeMatchesZPKGain(t *testing.T) {
	b, a, ok := ellipticPrototype(4, 1, 40)
	if !ok {
		t.Fatal("ellipticPrototype(4, 1, 40) failed")
	}

	if len(b) != 5 || len(a) != 5 {
		t.Fatalf("len(b)=%d len(a)=%d, want 5", len(b), len(a))
	}
}
