// Package fft wraps algo-fft's generic Plan for composite-length
// transforms, exposing the complex128-specialized surface the rest of
// this module's transform and convolution code is built against.
package fft

import (
	"errors"

	algofft "github.com/cwbudde/algo-fft"
)

var (
	// ErrInvalidSize is returned for non-positive transform lengths.
	ErrInvalidSize = errors.New("fft: size must be positive")
	// ErrSizeMismatch is returned when a buffer length does not match
	// the plan's transform size.
	ErrSizeMismatch = errors.New("fft: buffer length does not match plan size")
	// ErrUnsupportedSize is returned when algo-fft rejects a transform
	// length outright.
	ErrUnsupportedSize = errors.New("fft: size not supported by the underlying FFT engine")
)

// Plan holds an algo-fft engine plan for repeated forward and inverse
// transforms of a fixed length. A Plan is not safe for concurrent use
// by multiple goroutines.
type Plan struct {
	size  int
	inner *algofft.Plan[complex128]
}

// NewPlan creates a transform plan for the given length by delegating
// to algo-fft's generic engine, specialized here to complex128.
func NewPlan(size int) (*Plan, error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}

	inner, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, ErrUnsupportedSize
	}

	return &Plan{size: size, inner: inner}, nil
}

// NewPlan64 is an alias for NewPlan, matching the complex128-specialized
// plan constructor name used by the convolution package.
func NewPlan64(size int) (*Plan, error) {
	return NewPlan(size)
}

// Resize rebuilds the plan in place for a new transform length, so the
// caller's *Plan stays valid. A new inner plan is built on every call,
// even when the length is unchanged.
func (p *Plan) Resize(size int) error {
	fresh, err := NewPlan(size)
	if err != nil {
		return err
	}

	*p = *fresh

	return nil
}

// Release allows a Plan's resources to be reclaimed. algo-fft's Plan
// holds no resources beyond Go-managed memory; Release is a no-op
// provided for symmetry with the create/resize/release lifecycle used
// by callers that pool plans across transform sizes.
func (p *Plan) Release() {}

// Size returns the transform length the plan was created for.
func (p *Plan) Size() int {
	return p.size
}

// Forward computes the discrete Fourier transform of src into dst:
//
//	dst[k] = sum_n src[n] * exp(-2*pi*i*k*n/N)
//
// dst and src must each have length equal to the plan size.
func (p *Plan) Forward(dst, src []complex128) error {
	if len(src) != p.size || len(dst) != p.size {
		return ErrSizeMismatch
	}

	return p.inner.Forward(dst, src)
}

// Inverse computes the inverse discrete Fourier transform of src into
// dst, normalized by 1/N:
//
//	dst[n] = (1/N) * sum_k src[k] * exp(+2*pi*i*k*n/N)
//
// dst and src must each have length equal to the plan size.
func (p *Plan) Inverse(dst, src []complex128) error {
	if len(src) != p.size || len(dst) != p.size {
		return ErrSizeMismatch
	}

	return p.inner.Inverse(dst, src)
}
