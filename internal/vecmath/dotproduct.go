package vecmath

import algovec "github.com/cwbudde/algo-vecmath"

// DotProduct returns the dot product of a and b: sum(a[i] * b[i]).
// Unlike algo-vecmath's DotProduct, which requires equal-length slices,
// this tolerates a length mismatch by using only the shorter slice's
// length.
func DotProduct(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	if len(a) == len(b) {
		return algovec.DotProduct(a, b)
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}

	return sum
}
