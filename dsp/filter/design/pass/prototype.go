package pass

import (
	"math"
	"math/cmplx"

	"github.com/signalkit/spectral/internal/polynomial"
)

// zpkToPoly expands a zero/pole/gain description into an ascending-order
// (b, a) polynomial pair of order n, the shape the general ratcompos and
// bilinear pipeline in design.go operates on. a is the monic expansion of
// poles; b is gain times the expansion of zeros, zero-padded up to order n
// when zeros has fewer entries than poles (an all-pole or low-order-
// numerator prototype).
func zpkToPoly(zeros, poles []complex128, gain float64, n int) (b, a []float64) {
	aC, _ := polynomial.ExpandRoots(poles, n)
	bC, _ := polynomial.ExpandRoots(zeros, n)

	a = make([]float64, n+1)
	b = make([]float64, n+1)
	for i := range a {
		a[i] = real(aC[i])
		b[i] = gain * real(bC[i])
	}

	return b, a
}

// butterworthPrototype builds the normalized Butterworth analog lowpass
// prototype of the given order, cutoff 1 rad/s: |H(jw)|^2 = 1/(1+w^2N).
func butterworthPrototype(order int) (b, a []float64, ok bool) {
	if order <= 0 {
		return nil, nil, false
	}

	poles := make([]complex128, order)
	for k := 0; k < order; k++ {
		theta := math.Pi/2 + math.Pi*float64(2*k+1)/(2*float64(order))
		poles[k] = cmplx.Exp(complex(0, theta))
	}

	aC, _ := polynomial.ExpandRoots(poles, order)
	a = make([]float64, order+1)
	for i := range a {
		a[i] = real(aC[i])
	}

	b = make([]float64, order+1)
	b[0] = a[0] // unity DC gain: H(0) = b0/a0 = 1

	return b, a, true
}

// cheby1Prototype builds the normalized Chebyshev type I analog lowpass
// prototype: |H(jw)|^2 = 1/(1+eps^2*T_N(w)^2), with passband ripple
// rippleDB.
func cheby1Prototype(order int, rippleDB float64) (b, a []float64, ok bool) {
	if order <= 0 || rippleDB <= 0 {
		return nil, nil, false
	}

	eps := math.Sqrt(math.Pow(10, rippleDB/10) - 1)
	mu := math.Asinh(1/eps) / float64(order)

	poles := make([]complex128, order)
	for k := 0; k < order; k++ {
		theta := math.Pi * float64(2*k+1) / (2 * float64(order))
		poles[k] = complex(-math.Sinh(mu)*math.Sin(theta), math.Cosh(mu)*math.Cos(theta))
	}

	aC, _ := polynomial.ExpandRoots(poles, order)
	a = make([]float64, order+1)
	for i := range a {
		a[i] = real(aC[i])
	}

	b = make([]float64, order+1)
	b[0] = a[0]
	if order%2 == 0 {
		b[0] /= math.Sqrt(1 + eps*eps)
	}

	return b, a, true
}

// cheby2Prototype builds the normalized Chebyshev type II (inverse
// Chebyshev) analog lowpass prototype: |H(jw)|^2 =
// 1/(1+1/(eps_s^2*T_N(1/w)^2)), with stopband attenuation stopbandDB.
func cheby2Prototype(order int, stopbandDB float64) (b, a []float64, ok bool) {
	if order <= 0 || stopbandDB <= 0 {
		return nil, nil, false
	}

	eps := 1 / math.Sqrt(math.Pow(10, stopbandDB/10)-1)
	mu := math.Asinh(1/eps) / float64(order)

	poles := make([]complex128, order)
	zeros := make([]complex128, 0, order)

	for k := 0; k < order; k++ {
		theta := math.Pi * float64(2*k+1) / (2 * float64(order))
		p1 := complex(-math.Sinh(mu)*math.Sin(theta), math.Cosh(mu)*math.Cos(theta))
		poles[k] = 1 / p1

		c := math.Cos(theta)
		if math.Abs(c) > 1e-12 {
			zeros = append(zeros, complex(0, 1/c))
		}
	}

	aC, _ := polynomial.ExpandRoots(poles, order)
	bC, _ := polynomial.ExpandRoots(zeros, order)

	a = make([]float64, order+1)
	bRaw := make([]float64, order+1)
	for i := range a {
		a[i] = real(aC[i])
		bRaw[i] = real(bC[i])
	}

	if bRaw[0] == 0 {
		return nil, nil, false
	}

	scale := a[0] / bRaw[0] // force unity DC gain, Chebyshev II has no passband ripple
	b = make([]float64, order+1)
	for i := range b {
		b[i] = scale * bRaw[i]
	}

	return b, a, true
}

// ellipticPrototype builds the normalized elliptic (Cauer) analog lowpass
// prototype of order, passband ripple rippleDB and stopband attenuation
// stopbandDB, reusing the zero/pole/gain machinery in elliptic.go.
func ellipticPrototype(order int, rippleDB, stopbandDB float64) (b, a []float64, ok bool) {
	zeros, poles, gain, ok := ellipticAnalogPrototype(order, rippleDB, stopbandDB)
	if !ok {
		return nil, nil, false
	}

	b, a = zpkToPoly(zeros, poles, gain, order)

	return b, a, true
}
