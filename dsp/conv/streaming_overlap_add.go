package conv

import (
	"fmt"

	"github.com/signalkit/spectral/dsp/transform/fft"
)

// StreamingOverlapAdd implements streaming FFT-based convolution using
// overlap-add. Unlike OverlapAdd, which processes entire signals, this
// maintains state for block-by-block processing with minimal allocations.
//
// It is intended for real-time processing where fixed-size input blocks
// arrive continuously and fixed-size output blocks with continuity
// between blocks are required.
type StreamingOverlapAdd struct {
	kernelFFT []complex128

	kernelLen int
	blockSize int
	fftSize   int

	plan *fft.Plan

	inputPadded  []complex128
	outputPadded []complex128
	convResult   []float64

	tail []float64
}

// NewStreamingOverlapAdd creates a streaming overlap-add convolver.
// blockSize is the fixed size of input and output blocks.
func NewStreamingOverlapAdd(kernel []float64, blockSize int) (*StreamingOverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	if blockSize <= 0 {
		return nil, fmt.Errorf("conv: blockSize must be positive, got %d", blockSize)
	}

	kernelLen := len(kernel)

	minFFTSize := blockSize + kernelLen - 1
	fftSize := nextPowerOf2(minFFTSize)

	plan, err := fft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	soa := &StreamingOverlapAdd{
		kernelFFT:    make([]complex128, fftSize),
		kernelLen:    kernelLen,
		blockSize:    blockSize,
		fftSize:      fftSize,
		plan:         plan,
		inputPadded:  make([]complex128, fftSize),
		outputPadded: make([]complex128, fftSize),
		convResult:   make([]float64, blockSize+kernelLen-1),
		tail:         make([]float64, kernelLen-1),
	}

	kernelPadded := make([]complex128, fftSize)
	for i, v := range kernel {
		kernelPadded[i] = complex(v, 0)
	}

	if err := plan.Forward(soa.kernelFFT, kernelPadded); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return soa, nil
}

// processBlockCore performs the core convolution. Output is written to convResult.
func (soa *StreamingOverlapAdd) processBlockCore(input []float64) error {
	clear(soa.inputPadded)

	for i, v := range input {
		soa.inputPadded[i] = complex(v, 0)
	}

	if err := soa.plan.Forward(soa.inputPadded, soa.inputPadded); err != nil {
		return fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range soa.outputPadded {
		soa.outputPadded[i] = soa.inputPadded[i] * soa.kernelFFT[i]
	}

	if err := soa.plan.Inverse(soa.outputPadded, soa.outputPadded); err != nil {
		return fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	resultLen := soa.blockSize + soa.kernelLen - 1
	for i := 0; i < resultLen; i++ {
		soa.convResult[i] = real(soa.outputPadded[i])
	}

	tailLen := len(soa.tail)
	for i := 0; i < tailLen && i < resultLen; i++ {
		soa.convResult[i] += soa.tail[i]
	}

	newTailLen := resultLen - soa.blockSize
	for i := range newTailLen {
		soa.tail[i] = soa.convResult[soa.blockSize+i]
	}

	for i := newTailLen; i < len(soa.tail); i++ {
		soa.tail[i] = 0
	}

	return nil
}

// ProcessBlock convolves a single block and returns the output block.
// Input and output are both of size blockSize. State is maintained
// between calls to ensure continuity.
func (soa *StreamingOverlapAdd) ProcessBlock(input []float64) ([]float64, error) {
	if len(input) != soa.blockSize {
		return nil, fmt.Errorf("%w: expected %d samples, got %d", ErrLengthMismatch, soa.blockSize, len(input))
	}

	if err := soa.processBlockCore(input); err != nil {
		return nil, err
	}

	output := make([]float64, soa.blockSize)
	copy(output, soa.convResult[:soa.blockSize])

	return output, nil
}

// ProcessBlockTo convolves input block and writes to pre-allocated output.
// Both input and output must be of size blockSize. This is a
// zero-allocation version of ProcessBlock when output is pre-allocated.
func (soa *StreamingOverlapAdd) ProcessBlockTo(output, input []float64) error {
	if len(input) != soa.blockSize {
		return fmt.Errorf("%w: expected %d input samples, got %d", ErrLengthMismatch, soa.blockSize, len(input))
	}

	if len(output) != soa.blockSize {
		return fmt.Errorf("%w: expected %d output samples, got %d", ErrLengthMismatch, soa.blockSize, len(output))
	}

	if err := soa.processBlockCore(input); err != nil {
		return err
	}

	copy(output, soa.convResult[:soa.blockSize])

	return nil
}

// Reset clears the tail buffer (overlap state from previous blocks).
func (soa *StreamingOverlapAdd) Reset() {
	clear(soa.tail)
}

// BlockSize returns the block size.
func (soa *StreamingOverlapAdd) BlockSize() int {
	return soa.blockSize
}

// KernelLen returns the kernel length.
func (soa *StreamingOverlapAdd) KernelLen() int {
	return soa.kernelLen
}

// FFTSize returns the FFT size.
func (soa *StreamingOverlapAdd) FFTSize() int {
	return soa.fftSize
}
