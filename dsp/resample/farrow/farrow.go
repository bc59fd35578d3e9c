// Package farrow implements arbitrary rational resampling via the
// Farrow structure: a fixed 4-tap cubic-spline interpolator evaluated
// at a continuously varying fractional delay, rather than a bank of
// precomputed polyphase filters. It trades some passband flatness for
// the ability to resample at a ratio that is not fixed at design time
// and to process a stream in arbitrary-sized blocks without
// discontinuities at block boundaries.
//
// Package resample's polyphase-FIR Resampler remains the right choice
// when the ratio is known up front and stopband attenuation matters
// more than flexibility; this package is for the complementary case.
package farrow

import (
	"errors"

	"github.com/signalkit/spectral/dsp/interp"
)

var (
	// ErrInvalidRatio indicates a non-positive P or Q.
	ErrInvalidRatio = errors.New("farrow: p and q must be positive")
	// ErrInvalidDelay indicates a fractional delay outside [0, 1).
	ErrInvalidDelay = errors.New("farrow: fractional delay must be in [0, 1)")
)

// cubic evaluates the standard 4-tap Farrow cubic-spline polynomial at
// fractional phase mu in [0, 1) via dsp/interp's Hermite4 kernel, given
// the four samples surrounding the interpolation point (v0 one sample
// before, v3 one sample after the bracketing pair v1/v2).
func cubic(v0, v1, v2, v3, mu float64) float64 {
	return interp.Hermite4(mu, v0, v1, v2, v3)
}

// Spline resamples x from rate Fs to rate Fs*p/q using the Farrow
// cubic-spline structure. frd is the fractional delay, in [0, 1), of
// the first output sample relative to x[1]; it is normally 0 for a
// fresh (non-continued) call.
//
// It returns the resampled samples and the residual fractional delay
// to pass as frd to a later call continuing the same stream, provided
// that call's input is prefixed with this call's last 3 samples (see
// Resampler, which manages that bookkeeping automatically).
func Spline(x []float64, p, q int, frd float64) (y []float64, nextFrd float64, err error) {
	if p <= 0 || q <= 0 {
		return nil, frd, ErrInvalidRatio
	}
	if frd < 0 || frd >= 1 {
		return nil, frd, ErrInvalidDelay
	}
	if len(x) < 4 {
		return nil, frd, nil
	}

	step := float64(q) / float64(p)
	pos := 1 + frd
	maxBase := len(x) - 3

	for int(pos) <= maxBase {
		base := int(pos)
		mu := pos - float64(base)
		y = append(y, cubic(x[base-1], x[base], x[base+1], x[base+2], mu))
		pos += step
	}

	// The next block's coordinate frame starts 3 samples before the end
	// of this one (see Resampler.tail), so rebase pos into it and split
	// off the fractional remainder.
	nextFrd = pos - float64(len(x)-2)
	return y, nextFrd, nil
}

// Resampler is a stateful wrapper around Spline for processing a
// stream in successive blocks without recomputing history or losing
// fractional phase at block boundaries. It carries the last 3 input
// samples of the previous block forward so each new block's first
// 4-tap window only needs one fresh sample to complete.
//
// Continuation is exact (bit-for-bit, modulo floating-point
// associativity) for any ratio. For decimating ratios (p < q) the
// carried position can lie more than one sample into the next block;
// it is rebased into that block's frame as is, not reduced to [0, 1),
// so no input samples are skipped at a block boundary.
type Resampler struct {
	p, q int
	step float64
	pos  float64
	tail []float64
}

// NewRational returns a Resampler for output rate = input rate * p/q.
func NewRational(p, q int) (*Resampler, error) {
	if p <= 0 || q <= 0 {
		return nil, ErrInvalidRatio
	}
	return &Resampler{p: p, q: q, step: float64(q) / float64(p), pos: 1}, nil
}

// Reset clears carried history and fractional phase, starting the next
// ProcessBlock call as if on a fresh stream.
func (r *Resampler) Reset() {
	r.pos = 1
	r.tail = nil
}

// ProcessBlock resamples the next chunk of a continuous input stream,
// returning as many output samples as the available history and x
// support. It may return nil (not an error) if x plus carried history
// still isn't enough to produce a single 4-tap window; the samples are
// retained and contribute to the next call.
func (r *Resampler) ProcessBlock(x []float64) []float64 {
	full := append(append([]float64(nil), r.tail...), x...)
	if len(full) < 4 {
		r.tail = full
		return nil
	}

	var y []float64
	maxBase := len(full) - 3

	for int(r.pos) <= maxBase {
		base := int(r.pos)
		mu := r.pos - float64(base)
		y = append(y, cubic(full[base-1], full[base], full[base+1], full[base+2], mu))
		r.pos += r.step
	}

	shift := len(full) - 3
	r.pos -= float64(shift)
	if r.pos < 0 {
		r.pos = 0
	}

	tailStart := len(full) - 3
	if tailStart < 0 {
		tailStart = 0
	}
	r.tail = append([]float64(nil), full[tailStart:]...)

	return y
}

// OutputLen estimates the number of samples ProcessBlock/Spline will
// emit for n consecutive new input samples, per the ceiling rule
// ny = ceil(n*p/q). Actual per-call counts can be one less or more
// near input boundaries depending on the carried fractional phase.
func OutputLen(n, p, q int) int {
	return (n*p + q - 1) / q
}
