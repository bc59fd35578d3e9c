package vecmath

import algovec "github.com/cwbudde/algo-vecmath"

// Power computes power (magnitude squared) from separate real and
// imaginary parts: dst[i] = re[i]^2 + im[i]^2.
func Power(dst, re, im []float64) {
	algovec.Power(dst, re, im)
}
