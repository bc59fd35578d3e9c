package farrow

import (
	"math"
	"testing"
)

func tone(n int, cyclesPerSample float64) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * cyclesPerSample * float64(i))
	}
	return x
}

func TestSplineRejectsBadRatio(t *testing.T) {
	if _, _, err := Spline([]float64{1, 2, 3, 4}, 0, 1, 0); err != ErrInvalidRatio {
		t.Fatalf("err=%v, want ErrInvalidRatio", err)
	}
}

func TestSplineRejectsBadDelay(t *testing.T) {
	if _, _, err := Spline([]float64{1, 2, 3, 4}, 1, 1, 1.5); err != ErrInvalidDelay {
		t.Fatalf("err=%v, want ErrInvalidDelay", err)
	}
}

func TestSplineTooShortReturnsNothing(t *testing.T) {
	y, frd, err := Spline([]float64{1, 2, 3}, 2, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if y != nil || frd != 0 {
		t.Fatalf("y=%v frd=%v, want nil/0", y, frd)
	}
}

func TestSplineInterpolatesThroughKnownSamples(t *testing.T) {
	// A cubic spline through a straight ramp is exact: with mu=0 every
	// output sample should reproduce the input sample exactly, for any
	// ratio where samples line up on integer positions.
	x := make([]float64, 20)
	for i := range x {
		x[i] = float64(i)
	}

	y, _, err := Spline(x, 1, 1, 0)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range y {
		want := float64(i + 1) // base starts at 1
		if math.Abs(v-want) > 1e-9 {
			t.Fatalf("y[%d]=%v, want %v", i, v, want)
		}
	}
}

func TestResamplerUpsampleDoublesLength(t *testing.T) {
	r, err := NewRational(2, 1)
	if err != nil {
		t.Fatal(err)
	}

	x := tone(64, 0.05)
	y := r.ProcessBlock(x)

	if len(y) == 0 {
		t.Fatal("expected output samples")
	}
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatal("non-finite output sample")
		}
	}
}

func TestResamplerBlockContinuityMatchesOneShot(t *testing.T) {
	p, q := 3, 2
	x := tone(200, 0.01)

	oneShot, err := NewRational(p, q)
	if err != nil {
		t.Fatal(err)
	}
	full := oneShot.ProcessBlock(x)

	blocked, err := NewRational(p, q)
	if err != nil {
		t.Fatal(err)
	}

	var stitched []float64
	const blockSize = 16
	for start := 0; start < len(x); start += blockSize {
		end := start + blockSize
		if end > len(x) {
			end = len(x)
		}
		stitched = append(stitched, blocked.ProcessBlock(x[start:end])...)
	}

	n := len(full)
	if len(stitched) < n {
		n = len(stitched)
	}
	if n == 0 {
		t.Fatal("no output produced")
	}

	for i := 0; i < n; i++ {
		if math.Abs(full[i]-stitched[i]) > 1e-9 {
			t.Fatalf("sample %d diverges: one-shot=%v blocked=%v", i, full[i], stitched[i])
		}
	}
}

func TestOutputLenCeiling(t *testing.T) {
	if got := OutputLen(147, 160, 147); got != 160 {
		t.Fatalf("OutputLen=%d, want 160", got)
	}
	if got := OutputLen(10, 3, 7); got != 5 {
		t.Fatalf("OutputLen=%d, want 5", got)
	}
}

func TestResamplerResetClearsState(t *testing.T) {
	r, err := NewRational(160, 147)
	if err != nil {
		t.Fatal(err)
	}

	x := tone(256, 0.2177/(2*math.Pi))
	_ = r.ProcessBlock(x[:16])
	r.Reset()

	if r.pos != 1 || r.tail != nil {
		t.Fatalf("Reset left state: pos=%v tail=%v", r.pos, r.tail)
	}
}
