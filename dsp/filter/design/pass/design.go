package pass

import (
	"errors"
	"math"

	"github.com/signalkit/spectral/dsp/filter/biquad"
	"github.com/signalkit/spectral/internal/polynomial"
)

// Family selects the analog prototype shape for Design.
type Family int

const (
	Butterworth Family = iota
	Chebyshev1
	Chebyshev2
	Elliptic
)

// Band selects the target band shape for Design.
type Band int

const (
	LowPass Band = iota
	HighPass
	BandPass
	BandStop
)

// ErrInvalidOrder is returned when order is non-positive, or odd for a
// band-pass/band-stop target (those transforms double the order and
// require an even starting order).
var ErrInvalidOrder = errors.New("pass: invalid filter order")

// ErrUnsupportedPrototype is returned when the chosen prototype's
// parameters (ripple/stopband) are out of range for its family.
var ErrUnsupportedPrototype = errors.New("pass: prototype construction failed")

// Design builds a digital IIR filter by composing an analog prototype
// (family, order, rp, rs) through the general-order rational-composition
// band transform and the general-order bilinear transform, then
// factoring the resulting (B, A) pair into second-order sections. edges
// holds one frequency (lowpass/highpass) or two (band-pass/band-stop),
// each normalized so that 1 corresponds to the Nyquist frequency.
//
// This is the single entry point grounding spec.md's four-step IIR
// design pipeline (prototype, stopband renormalization, rational
// composition, bilinear transform); ButterworthLP and its per-family
// siblings remain as a narrower, pre-generalized convenience layer
// (direct per-biquad-Q synthesis) for callers who only need a plain
// lowpass/highpass Butterworth or Chebyshev cascade.
func Design(family Family, band Band, order int, edges []float64, rp, rs float64) ([]biquad.Coefficients, error) {
	if order <= 0 {
		return nil, ErrInvalidOrder
	}
	if (band == BandPass || band == BandStop) && order%2 != 0 {
		return nil, ErrInvalidOrder
	}

	b, a, ok := analogPrototype(family, order, rp, rs)
	if !ok {
		return nil, ErrUnsupportedPrototype
	}

	b, a, err := applyBandTransform(b, a, band, edges, order, rp, rs)
	if err != nil {
		return nil, err
	}

	// Standard T=2 bilinear prewarp: digital edges already feed the
	// band transform directly as tangent-warped analog edges (see
	// prewarpEdges), so k=1 here.
	b, a = polynomial.Bilinear(b, a, 1)

	sections := polyToSOS(b, a)
	if sections == nil {
		return nil, ErrUnsupportedPrototype
	}

	return sections, nil
}

func analogPrototype(family Family, order int, rp, rs float64) (b, a []float64, ok bool) {
	switch family {
	case Butterworth:
		return butterworthPrototype(order)
	case Chebyshev1:
		return cheby1Prototype(order, rp)
	case Chebyshev2:
		return cheby2Prototype(order, rs)
	case Elliptic:
		return ellipticPrototype(order, rp, rs)
	default:
		return nil, nil, false
	}
}

// prewarpEdges converts normalized digital edge frequencies (1 ==
// Nyquist) to the tangent-warped analog domain consistent with a T=2
// bilinear transform: wa = tan(pi*fd/2).
func prewarpEdges(edges []float64) []float64 {
	out := make([]float64, len(edges))
	for i, f := range edges {
		out[i] = math.Tan(math.Pi * f / 2)
	}

	return out
}

// filterWs1 computes the minimum-order Chebyshev/elliptic edge ratio:
// the stopband/passband frequency ratio that an order-N prototype with
// ripple rp and stopband attenuation rs actually achieves. Used to
// renormalize the user-supplied stopband edge for high-pass and
// band-stop targets before the rational composition step, per spec.md
// §4.7 step 2 ("pre-renormalize the stopband frequency via
// filter_ws1(N, Rp, Rs, type)").
func filterWs1(order int, rippleDB, stopbandDB float64) float64 {
	if order <= 0 || rippleDB <= 0 || stopbandDB <= 0 {
		return 1
	}

	num := math.Pow(10, stopbandDB/10) - 1
	den := math.Pow(10, rippleDB/10) - 1
	if den <= 0 || num <= 0 {
		return 1
	}

	return math.Cosh(math.Acosh(math.Sqrt(num/den)) / float64(order))
}

func applyBandTransform(b, a []float64, band Band, edges []float64, order int, rp, rs float64) ([]float64, []float64, error) {
	warped := prewarpEdges(edges)

	switch band {
	case LowPass:
		if len(warped) < 1 {
			return nil, nil, ErrInvalidOrder
		}
		c := []float64{0, warped[0]}
		d := []float64{1, 0}
		B, A := polynomial.RatCompos(b, a, c, d)
		return B, A, nil

	case HighPass:
		if len(warped) < 1 {
			return nil, nil, ErrInvalidOrder
		}
		w0 := warped[0]
		if rp > 0 && rs > 0 {
			w0 *= filterWs1(order, rp, rs)
		}
		c := []float64{w0, 0}
		d := []float64{0, 1}
		B, A := polynomial.RatCompos(b, a, c, d)
		return B, A, nil

	case BandPass:
		if len(warped) < 2 {
			return nil, nil, ErrInvalidOrder
		}
		wl, wh := warped[0], warped[1]
		c := []float64{wl * wh, 0, 1}
		d := []float64{0, wh - wl, 0}
		B, A := polynomial.RatCompos(b, a, c, d)
		return B, A, nil

	case BandStop:
		if len(warped) < 2 {
			return nil, nil, ErrInvalidOrder
		}
		wl, wh := warped[0], warped[1]
		if rp > 0 && rs > 0 {
			ratio := filterWs1(order/2, rp, rs)
			wl /= ratio
			wh *= ratio
		}
		c := []float64{0, wh - wl, 0}
		d := []float64{wl * wh, 0, 1}
		B, A := polynomial.RatCompos(b, a, c, d)
		return B, A, nil

	default:
		return nil, nil, ErrInvalidOrder
	}
}
