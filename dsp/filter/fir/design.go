package fir

import (
	"errors"
	"math"

	"github.com/signalkit/spectral/dsp/window"
)

// Band selects which ideal frequency response shape Design approximates.
type Band int

const (
	LowPass Band = iota
	HighPass
	BandPass
	BandStop
)

var (
	// ErrInvalidEdges is returned when the number of band edges doesn't
	// match the requested Band.
	ErrInvalidEdges = errors.New("fir: wrong number of band edges for this band type")
	// ErrInvalidOrder is returned when HighPass or BandStop is requested
	// with an odd order; both require a center tap to realize the
	// all-pass-minus-stopband identity.
	ErrInvalidOrder = errors.New("fir: order must be even for highpass/bandstop")
)

// Design builds a windowed, linear-phase FIR filter with order+1 taps
// (order must be even for HighPass and BandStop). Edges are normalized
// so that 1 corresponds to the Nyquist frequency: LowPass and HighPass
// take one edge, BandPass and BandStop take two (low, high). win
// selects the taper applied to the truncated ideal impulse response;
// opts are forwarded to window.Generate for parametric windows such as
// Kaiser or Dolph-Chebyshev.
func Design(band Band, order int, edges []float64, win window.Type, opts ...window.Option) (*Filter, error) {
	switch band {
	case LowPass, HighPass:
		if len(edges) != 1 {
			return nil, ErrInvalidEdges
		}
	case BandPass, BandStop:
		if len(edges) != 2 {
			return nil, ErrInvalidEdges
		}
	default:
		return nil, ErrInvalidEdges
	}

	if (band == HighPass || band == BandStop) && order%2 != 0 {
		return nil, ErrInvalidOrder
	}

	n := order + 1
	m := float64(order) / 2
	h := make([]float64, n)

	switch band {
	case LowPass:
		wc := edges[0]
		for i := range h {
			h[i] = wc * normSinc(wc*(float64(i)-m))
		}
	case HighPass:
		wc := edges[0]
		for i := range h {
			h[i] = normSinc(float64(i)-m) - wc*normSinc(wc*(float64(i)-m))
		}
	case BandPass:
		lo, hi := edges[0], edges[1]
		for i := range h {
			h[i] = hi*normSinc(hi*(float64(i)-m)) - lo*normSinc(lo*(float64(i)-m))
		}
	case BandStop:
		lo, hi := edges[0], edges[1]
		for i := range h {
			h[i] = normSinc(float64(i)-m) - hi*normSinc(hi*(float64(i)-m)) + lo*normSinc(lo*(float64(i)-m))
		}
	}

	taper := window.Generate(win, n, opts...)
	for i := range h {
		h[i] *= taper[i]
	}

	return New(h), nil
}

// normSinc is the normalized sinc: sin(pi*x)/(pi*x), 1 at x=0.
func normSinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}
