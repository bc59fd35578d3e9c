package vecmath

import algovec "github.com/cwbudde/algo-vecmath"

// ScaleBlock multiplies each element by a scalar: dst[i] = src[i] * scale.
func ScaleBlock(dst, src []float64, scale float64) {
	algovec.ScaleBlock(dst, src, scale)
}

// ScaleBlockInPlace multiplies each element by a scalar in-place: dst[i] *= scale.
// algo-vecmath has no in-place scalar kernel, so this stays hand-rolled.
func ScaleBlockInPlace(dst []float64, scale float64) {
	for i := range dst {
		dst[i] *= scale
	}
}
