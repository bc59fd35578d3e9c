package vecmath

import algovec "github.com/cwbudde/algo-vecmath"

// MulBlock performs element-wise multiplication: dst[i] = a[i] * b[i].
func MulBlock(dst, a, b []float64) {
	algovec.MulBlock(dst, a, b)
}

// MulBlockInPlace performs in-place element-wise multiplication: dst[i] *= src[i].
func MulBlockInPlace(dst, src []float64) {
	algovec.MulBlockInPlace(dst, src)
}
