package vecmath

import algovec "github.com/cwbudde/algo-vecmath"

// Magnitude computes magnitude from separate real and imaginary parts:
// dst[i] = sqrt(re[i]^2 + im[i]^2).
func Magnitude(dst, re, im []float64) {
	algovec.Magnitude(dst, re, im)
}
