package window

import (
	"math"

	"github.com/signalkit/spectral/dsp/transform/dft"
)

// dolphChebyshevWindow builds a Dolph-Chebyshev window of length n with
// sidelobe attenuation sidelobeDB (positive, e.g. 100 for -100 dB
// sidelobes). Unlike every other window in this package it has no
// per-sample closed form: the ripple is specified in the frequency
// domain as a Chebyshev polynomial sampled on the unit circle, and the
// time-domain taps are recovered via an inverse DFT — the one window
// type that calls back into dsp/transform/dft rather than dsp/window's
// own per-sample evaluator.
func dolphChebyshevWindow(n int, sidelobeDB float64) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{1}
	}

	m := n - 1
	atten := math.Abs(sidelobeDB)
	if atten < 1 {
		atten = 1
	}

	alpha := math.Pow(10, atten/20)
	beta := math.Cosh(math.Acosh(alpha) / float64(m))

	freq := make([]complex128, n)
	for k := 0; k < n; k++ {
		x := beta * math.Cos(math.Pi*float64(k)/float64(n))

		var tk float64
		switch {
		case x > 1:
			tk = math.Cosh(float64(m) * math.Acosh(x))
		case x < -1:
			tk = math.Cosh(float64(m) * math.Acosh(-x))
			if m%2 == 1 {
				tk = -tk
			}
		default:
			tk = math.Cos(float64(m) * math.Acos(x))
		}

		if k%2 == 1 {
			tk = -tk
		}

		freq[k] = complex(tk, 0)
	}

	timeDomain, err := dft.Inverse(freq)
	if err != nil {
		return nil
	}

	half := n / 2
	w := make([]float64, n)
	maxAbs := 0.0
	for i := range w {
		v := real(timeDomain[(i+half)%n])
		w[i] = v
		if math.Abs(v) > maxAbs {
			maxAbs = math.Abs(v)
		}
	}

	if maxAbs == 0 {
		return w
	}

	for i := range w {
		w[i] /= maxAbs
	}

	return w
}
