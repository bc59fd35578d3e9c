// Package vecmath provides element-wise vector arithmetic shared by the
// spectral and filter packages. All functions operate on caller-owned
// slices and never allocate. Where algo-vecmath exposes the kernel
// directly, this package is a thin pass-through to it; the remaining
// functions (no algo-vecmath counterpart) are implemented directly.
package vecmath

import algovec "github.com/cwbudde/algo-vecmath"

// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
func AddBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}

	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// AddBlockInPlace performs in-place element-wise addition: dst[i] += src[i].
func AddBlockInPlace(dst, src []float64) {
	algovec.AddBlockInPlace(dst, src)
}
