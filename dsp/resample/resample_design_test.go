package resample

import (
	"math"
	"testing"
)

func TestApproximateRatioReducesToLowestTerms(t *testing.T) {
	num, den := approximateRatio(48000.0/44100.0, 4096)
	if num != 160 || den != 147 {
		t.Fatalf("approximateRatio(48000/44100) = %d/%d, want 160/147", num, den)
	}
}

func TestApproximateRatioRejectsDegenerateInput(t *testing.T) {
	if num, den := approximateRatio(0, 4096); num != 1 || den != 1 {
		t.Fatalf("approximateRatio(0) = %d/%d, want 1/1", num, den)
	}
	if num, den := approximateRatio(math.NaN(), 4096); num != 1 || den != 1 {
		t.Fatalf("approximateRatio(NaN) = %d/%d, want 1/1", num, den)
	}
}

func TestDesignPolyphaseFIRUnityDCGain(t *testing.T) {
	cfg := defaultConfig().finalized()

	taps, phases, maxPhaseLn, err := designPolyphaseFIR(3, 2, cfg)
	if err != nil {
		t.Fatalf("designPolyphaseFIR() error = %v", err)
	}
	if len(phases) != 3 {
		t.Fatalf("len(phases) = %d, want 3", len(phases))
	}
	if maxPhaseLn <= 0 {
		t.Fatalf("maxPhaseLn = %d, want > 0", maxPhaseLn)
	}

	// The prototype filter is scaled so its DC gain equals up (the
	// interpolation factor), since each polyphase branch at DC contributes
	// its share of that same gain.
	var sum float64
	for _, v := range taps {
		sum += v
	}
	if math.Abs(sum-3) > 1e-9 {
		t.Fatalf("sum(taps) = %v, want 3", sum)
	}
}

func TestSincAtZero(t *testing.T) {
	if got := sinc(0); math.Abs(got-1) > 1e-12 {
		t.Fatalf("sinc(0) = %v, want 1", got)
	}
}

func TestKaiserWindowEndpointsNearZero(t *testing.T) {
	n := 33
	w := kaiserWindow(0, n, 7.5)
	if w > 0.2 {
		t.Fatalf("kaiserWindow(0, %d, 7.5) = %v, want small", n, w)
	}

	center := kaiserWindow(n/2, n, 7.5)
	if center < 0.9 {
		t.Fatalf("kaiserWindow(center, %d, 7.5) = %v, want near 1", n, center)
	}
}
