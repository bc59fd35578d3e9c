// Package polynomial provides the coefficient-vector kernel shared by the
// filter-design and spectral packages: Horner evaluation, convolution,
// root finding, and monic zero-to-coefficient expansion. Coefficients are
// always in ascending power order: a[0] + a[1]*x + ... + a[ord]*x^ord.
package polynomial

import (
	"errors"

	"github.com/signalkit/spectral/internal/polyroot"
)

// ErrNegativeOrder is returned when a polynomial order is negative.
var ErrNegativeOrder = errors.New("polynomial: order must be non-negative")

// ErrZeroLeadingCoeff is returned when the leading (highest-order)
// coefficient is zero, making the order ill-defined for root finding.
var ErrZeroLeadingCoeff = errors.New("polynomial: leading coefficient is zero")

// Eval evaluates a real polynomial at x via Horner's method, starting
// from the highest coefficient. a is in ascending power order.
func Eval(a []float64, x float64) float64 {
	if len(a) == 0 {
		return 0
	}

	v := a[len(a)-1]
	for i := len(a) - 2; i >= 0; i-- {
		v = v*x + a[i]
	}

	return v
}

// EvalAt evaluates a at every point in xs, preserving query order.
func EvalAt(a []float64, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = Eval(a, x)
	}

	return out
}

// EvalComplex evaluates a real polynomial at a complex point x via
// Horner's method.
func EvalComplex(a []float64, x complex128) complex128 {
	if len(a) == 0 {
		return 0
	}

	v := complex(a[len(a)-1], 0)
	for i := len(a) - 2; i >= 0; i-- {
		v = v*x + complex(a[i], 0)
	}

	return v
}

// EvalComplexAt evaluates a at every point in xs, preserving query order.
func EvalComplexAt(a []float64, xs []complex128) []complex128 {
	out := make([]complex128, len(xs))
	for i, x := range xs {
		out[i] = EvalComplex(a, x)
	}

	return out
}

// Conv computes the full linear convolution of a and b, producing
// len(a)+len(b)-1 coefficients. The result is always a freshly
// allocated slice, so it never aliases a or b.
func Conv(a, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	out := make([]float64, len(a)+len(b)-1)
	for i, av := range a {
		if av == 0 {
			continue
		}

		for j, bv := range b {
			out[i+j] += av * bv
		}
	}

	return out
}

// ConvComplex is the complex-coefficient counterpart of Conv.
func ConvComplex(a, b []complex128) []complex128 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	out := make([]complex128, len(a)+len(b)-1)
	for i, av := range a {
		if av == 0 {
			continue
		}

		for j, bv := range b {
			out[i+j] += av * bv
		}
	}

	return out
}

// Roots finds all roots of a real polynomial a (ascending order) via
// Durand-Kerner simultaneous iteration over the normalized (monic)
// polynomial. The order is len(a)-1; a[ord] must be nonzero.
func Roots(a []float64) ([]complex128, error) {
	ord := len(a) - 1
	if ord < 0 {
		return nil, ErrNegativeOrder
	}

	if a[ord] == 0 {
		return nil, ErrZeroLeadingCoeff
	}

	// DurandKerner expects descending-power-order complex coefficients.
	desc := make([]complex128, len(a))
	for i, v := range a {
		desc[len(a)-1-i] = complex(v, 0)
	}

	return polyroot.DurandKerner(desc)
}

// ExpandRoots builds the monic polynomial (ascending order, length
// ord+1) whose roots are zeros, by repeatedly convolving in monomials
// (x - z_i). When len(zeros) < ord the high-order slots beyond the
// natural degree are zero.
func ExpandRoots(zeros []complex128, ord int) ([]complex128, error) {
	if ord < 0 {
		return nil, ErrNegativeOrder
	}

	acc := []complex128{1}
	for _, z := range zeros {
		acc = ConvComplex(acc, []complex128{-z, 1})
	}

	out := make([]complex128, ord+1)
	copy(out, acc)

	return out, nil
}
