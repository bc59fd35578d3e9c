// Package eval evaluates filter transfer functions: analog and digital
// frequency response, magnitude/phase/group-delay derivatives of that
// response, impulse response recovery from an analog response, and
// direct-form IIR time-domain filtering.
package eval

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/signalkit/spectral/dsp/core"
	"github.com/signalkit/spectral/dsp/transform/dft"
	"github.com/signalkit/spectral/dsp/transform/fft"
	"github.com/signalkit/spectral/internal/polynomial"
)

var (
	// ErrDivZero is returned when a transfer function's denominator is
	// exactly zero at a requested frequency sample.
	ErrDivZero = errors.New("eval: denominator is zero at a frequency sample")
	// ErrFilterA0 is returned when an IIR denominator's leading
	// coefficient is zero.
	ErrFilterA0 = errors.New("eval: a[0] must not be zero")
	// ErrEmptyInput is returned for empty coefficient or sample vectors.
	ErrEmptyInput = errors.New("eval: input must not be empty")
)

// Flags selects optional post-processing for Resp.
type Flags int

const (
	// FlagLogMag reports magnitude as 10*log10(|H|^2) instead of linear |H|.
	FlagLogMag Flags = 1 << iota
	// FlagUnwrap unwraps phase to a fixed point before returning it.
	FlagUnwrap
)

// Freqs evaluates the analog transfer function H(jw) = B(jw)/A(jw) at
// each angular frequency in omega. b and a are in ascending power order
// (b[0] + b[1]*s + ... ), matching internal/polynomial's convention.
func Freqs(b, a []float64, omega []float64) ([]complex128, error) {
	return respAt(b, a, omega, func(w float64) complex128 {
		return complex(0, w)
	})
}

// Freqz evaluates the digital transfer function H(z) = B(z)/A(z) at
// z = e^{-j*omega_k}, i.e. H evaluated as a polynomial in z^-1. b and a
// are in ascending power order of z^-1. If a is nil or empty the
// transfer function is treated as FIR (denominator == 1).
func Freqz(b, a []float64, omega []float64) ([]complex128, error) {
	return respAt(b, a, omega, func(w float64) complex128 {
		return cmplx.Exp(complex(0, -w))
	})
}

func respAt(b, a []float64, omega []float64, point func(float64) complex128) ([]complex128, error) {
	if len(b) == 0 || len(omega) == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]complex128, len(omega))
	for i, w := range omega {
		x := point(w)
		num := polynomial.EvalComplex(b, x)

		den := complex(1, 0)
		if len(a) > 0 {
			den = polynomial.EvalComplex(a, x)
		}

		if den == 0 {
			return nil, ErrDivZero
		}

		out[i] = num / den
	}

	return out, nil
}

// Magnitude returns |H[k]| for each response sample, or
// 10*log10(|H[k]|^2) under FlagLogMag.
func Magnitude(resp []complex128, flags Flags) []float64 {
	out := make([]float64, len(resp))
	for i, h := range resp {
		if flags&FlagLogMag != 0 {
			p := real(h)*real(h) + imag(h)*imag(h)
			out[i] = core.LinearPowerToDB(p)
			continue
		}

		out[i] = cmplx.Abs(h)
	}

	return out
}

// Phase returns arg(H[k]) for each response sample, wrapped to
// (-pi, pi] unless FlagUnwrap is set, in which case the whole sequence
// is unwrapped with Unwrap's default parameters.
func Phase(resp []complex128, flags Flags) []float64 {
	out := make([]float64, len(resp))
	for i, h := range resp {
		out[i] = cmplx.Phase(h)
	}

	if flags&FlagUnwrap != 0 {
		Unwrap(out, 2*math.Pi, 0.5)
	}

	return out
}

// Unwrap removes level-sized discontinuities from phi in place,
// iterating to a fixed point: any pass over phi that still finds a
// jump exceeding margin*level is repeated with the accumulated
// correction from the prior pass. level is typically 2*pi; margin is
// in (0,1) and scales how large a jump must be before it is corrected.
func Unwrap(phi []float64, level, margin float64) {
	if len(phi) < 1 || level <= 0 || margin <= 0 {
		return
	}

	threshold := margin * level

	for {
		changed := false
		var carry, pending float64

		for k := 0; k < len(phi)-1; k++ {
			d := phi[k+1] - phi[k]

			switch {
			case d > threshold:
				carry -= level
				changed = true
			case d < -threshold:
				carry += level
				changed = true
			}

			phi[k] += pending
			pending = carry
		}

		phi[len(phi)-1] += pending

		if !changed {
			return
		}
	}
}

// GroupDelay computes group delay (in samples, for digital responses,
// or seconds, for analog responses with omega already in rad/s) from
// phase differences taken over a 2% side-step around each frequency
// sample: for omega[k], the response is re-evaluated at
// omega[k]*(1±0.01) and the delay is the negated slope between those
// two points. This deliberately avoids differentiating the transfer
// function analytically, at the cost of a small stability/precision
// tradeoff controlled by the step size.
func GroupDelay(b, a []float64, omega []float64, analog bool) ([]float64, error) {
	if len(b) == 0 || len(omega) == 0 {
		return nil, ErrEmptyInput
	}

	point := func(w float64) complex128 { return cmplx.Exp(complex(0, -w)) }
	if analog {
		point = func(w float64) complex128 { return complex(0, w) }
	}

	out := make([]float64, len(omega))

	for i, w := range omega {
		step := 0.01 * w
		if step == 0 {
			step = 1e-6
		}

		hi, err := respAt(b, a, []float64{w + step}, point)
		if err != nil {
			return nil, err
		}

		lo, err := respAt(b, a, []float64{w - step}, point)
		if err != nil {
			return nil, err
		}

		d := cmplx.Phase(hi[0]) - cmplx.Phase(lo[0])
		for d > math.Pi {
			d -= 2 * math.Pi
		}
		for d < -math.Pi {
			d += 2 * math.Pi
		}

		out[i] = -d / (2 * step)
	}

	return out, nil
}

// FreqsToTime recovers an impulse response from an analog transfer
// function by sampling H(jw) over [-Fs/2, Fs/2] at n periodic points,
// applying an FFT shift, inverse-transforming, and taking the real
// part scaled by Fs. It falls back to the naive inverse DFT when
// fft.NewPlan returns an error for n.
func FreqsToTime(b, a []float64, n int, sampleRate float64) ([]float64, error) {
	if n <= 0 {
		return nil, ErrEmptyInput
	}

	// omega[k] sweeps [-Fs/2, Fs/2) in angular frequency (rad/s).
	omega := make([]float64, n)
	for k := range omega {
		frac := float64(k)/float64(n) - 0.5
		omega[k] = frac * 2 * math.Pi * sampleRate
	}

	resp, err := Freqs(b, a, omega)
	if err != nil {
		return nil, err
	}

	shifted := fft.Shift(resp)

	var timeDomain []complex128
	if plan, perr := fft.NewPlan(n); perr == nil {
		timeDomain = make([]complex128, n)
		if err := plan.Inverse(timeDomain, shifted); err != nil {
			return nil, err
		}
	} else {
		timeDomain, err = dft.Inverse(shifted)
		if err != nil {
			return nil, err
		}
	}

	out := make([]float64, n)
	for i, v := range timeDomain {
		out[i] = real(v) * sampleRate
	}

	return out, nil
}

// FilterIIR computes the direct-form-II time-domain output of an IIR
// filter with transfer function B(z^-1)/A(z^-1) for input x. b and a
// both have ord+1 coefficients in ascending power order of z^-1; a may
// be nil or empty for FIR-mode filtering. Internal copies of b and a
// are normalized by a[0] so the caller's coefficients are never
// mutated.
func FilterIIR(b, a []float64, x []float64) ([]float64, error) {
	if len(b) == 0 || len(x) == 0 {
		return nil, ErrEmptyInput
	}

	ord := len(b) - 1
	count := ord + 1

	bn := make([]float64, count)
	copy(bn, b)

	an := make([]float64, count)
	if len(a) > 0 {
		if a[0] == 0 {
			return nil, ErrFilterA0
		}

		for k := 0; k < count && k < len(a); k++ {
			an[k] = a[k] / a[0]
			bn[k] = b[k] / a[0]
		}
		for k := len(a); k < count; k++ {
			bn[k] = b[k] / a[0]
		}
	}

	buf := make([]float64, count)
	y := make([]float64, len(x))

	for k, xk := range x {
		for m := ord; m > 0; m-- {
			buf[m] = buf[m-1]
		}

		u := 0.0
		for m := ord; m > 0; m-- {
			u += buf[m] * an[m]
		}

		buf[0] = xk - u

		var yk float64
		for m := 0; m < count; m++ {
			yk += buf[m] * bn[m]
		}

		y[k] = yk
	}

	return y, nil
}
