// Package complexmath provides element-wise complex elementary functions
// used by the elliptic and polynomial kernels. All functions operate on
// caller-owned slices and use the principal branch.
package complexmath

import "math"

// Sqrt computes the principal square root of each element of x into dst.
// It avoids catastrophic cancellation for negative-real inputs by
// reflecting through |x|: for x != 0, t = x + |x| and the result is
// sqrt(|x|) * t / |t|. On the negative real axis, where t is zero, the
// result is j*sqrt(|x|).
func Sqrt(dst, x []complex128) {
	for i, v := range x {
		dst[i] = sqrt1(v)
	}
}

func sqrt1(x complex128) complex128 {
	a := cabs(x)
	if a == 0 {
		return 0
	}

	t := x + complex(a, 0)
	ta := cabs(t)
	if ta == 0 {
		return complex(0, math.Sqrt(a))
	}

	return complex(math.Sqrt(a), 0) * (t / complex(ta, 0))
}

func cabs(x complex128) float64 {
	return math.Hypot(real(x), imag(x))
}

// Log computes the principal natural logarithm of each element of x into
// dst: log|x| + j*atan2(Im, Re).
func Log(dst, x []complex128) {
	for i, v := range x {
		dst[i] = complex(math.Log(cabs(v)), math.Atan2(imag(v), real(v)))
	}
}

// Asin computes the principal arcsine of each element of x into dst via
// asin(x) = -j * log(j*x + sqrt(1 - x^2)).
func Asin(dst, x []complex128) {
	for i, v := range x {
		dst[i] = asin1(v)
	}
}

func asin1(x complex128) complex128 {
	inner := sqrt1(1 - x*x)
	arg := complex(0, 1)*x + inner
	l := complex(math.Log(cabs(arg)), math.Atan2(imag(arg), real(arg)))

	return complex(0, -1) * l
}

// Acos computes the principal arccosine of each element of x into dst via
// acos(x) = pi/2 - asin(x).
func Acos(dst, x []complex128) {
	for i, v := range x {
		dst[i] = complex(math.Pi/2, 0) - asin1(v)
	}
}

// Sin computes the complex sine of each element of x into dst using the
// exponential form: sin(a+jb) = sin(a)*cosh(b) + j*cos(a)*sinh(b).
func Sin(dst, x []complex128) {
	for i, v := range x {
		a, b := real(v), imag(v)
		dst[i] = complex(math.Sin(a)*math.Cosh(b), math.Cos(a)*math.Sinh(b))
	}
}

// Cos computes the complex cosine of each element of x into dst using the
// exponential form: cos(a+jb) = cos(a)*cosh(b) - j*sin(a)*sinh(b).
func Cos(dst, x []complex128) {
	for i, v := range x {
		a, b := real(v), imag(v)
		dst[i] = complex(math.Cos(a)*math.Cosh(b), -math.Sin(a)*math.Sinh(b))
	}
}

// Magnitude computes |x[i]| into dst.
func Magnitude(dst []float64, x []complex128) {
	for i, v := range x {
		dst[i] = cabs(v)
	}
}
