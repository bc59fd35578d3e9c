package fft

// Shift performs an fftshift: it swaps the left and right halves of x so
// the zero-frequency component moves to the center of the sequence. For
// odd length, the center sample stays with the left half.
func Shift(x []complex128) []complex128 {
	y := make([]complex128, len(x))
	shiftHalves(y, x)

	return y
}

// ShiftReal is the real-valued counterpart of Shift.
func ShiftReal(x []float64) []float64 {
	y := make([]float64, len(x))
	shiftHalvesReal(y, x)

	return y
}

func shiftHalves(y, x []complex128) {
	n := len(x)
	if n%2 == 0 {
		half := n / 2
		copy(y[:half], x[half:])
		copy(y[half:], x[:half])

		return
	}

	half := (n + 1) / 2
	copy(y[:n-half], x[half:])
	copy(y[n-half:], x[:half])
}

func shiftHalvesReal(y, x []float64) {
	n := len(x)
	if n%2 == 0 {
		half := n / 2
		copy(y[:half], x[half:])
		copy(y[half:], x[:half])

		return
	}

	half := (n + 1) / 2
	copy(y[:n-half], x[half:])
	copy(y[n-half:], x[:half])
}
