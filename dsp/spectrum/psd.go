package spectrum

import (
	"errors"
	"fmt"

	"github.com/signalkit/spectral/dsp/core"
	"github.com/signalkit/spectral/dsp/transform/dft"
	"github.com/signalkit/spectral/dsp/transform/fft"
	"github.com/signalkit/spectral/dsp/window"
)

// ErrEmptyInput is returned when a PSD estimator receives no samples.
var ErrEmptyInput = errors.New("spectrum: input must not be empty")

// PSDOption configures the periodogram-family estimators.
type PSDOption func(*psdConfig)

type psdConfig struct {
	winType   window.Type
	winOpts   []window.Option
	twoSided  bool
	logMag    bool
	sampleRate float64
}

func defaultPSDConfig() psdConfig {
	return psdConfig{
		winType:    window.TypeHann,
		sampleRate: 1,
	}
}

// WithPSDWindow selects the taper applied before each segment's FFT.
func WithPSDWindow(t window.Type, opts ...window.Option) PSDOption {
	return func(c *psdConfig) {
		c.winType = t
		c.winOpts = opts
	}
}

// WithPSDTwoSided reports all n bins fft-shifted onto [-Fs/2, Fs/2)
// instead of the default one-sided output, which holds only the n/2+1
// bins covering [0, Fs/2]; bins above Fs/2 are not returned by default.
func WithPSDTwoSided() PSDOption {
	return func(c *psdConfig) {
		c.twoSided = true
	}
}

// WithPSDLogMag converts the output to dB/Hz (10*log10(psd)).
func WithPSDLogMag() PSDOption {
	return func(c *psdConfig) {
		c.logMag = true
	}
}

// WithPSDSampleRate sets Fs used for the U*Fs normalization. Defaults to 1.
func WithPSDSampleRate(fs float64) PSDOption {
	return func(c *psdConfig) {
		c.sampleRate = fs
	}
}

// Periodogram computes the modified (windowed) periodogram of x: apply
// the configured window, FFT, take |Y|^2, and normalize by U*Fs where
// U = sum(w[n]^2) is the window's power normalization constant.
func Periodogram(x []float64, opts ...PSDOption) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	cfg := defaultPSDConfig()
	for _, o := range opts {
		o(&cfg)
	}

	return periodogramSegment(x, cfg)
}

func periodogramSegment(x []float64, cfg psdConfig) ([]float64, error) {
	n := len(x)
	w := window.Generate(cfg.winType, n, cfg.winOpts...)

	u := 0.0
	tapered := make([]complex128, n)
	for i, v := range x {
		u += w[i] * w[i]
		tapered[i] = complex(v*w[i], 0)
	}

	plan, err := fft.NewPlan(n)
	freqDomain := make([]complex128, n)
	if err == nil {
		if ferr := plan.Forward(freqDomain, tapered); ferr != nil {
			return nil, ferr
		}
	} else {
		freqDomain, err = dft.Forward(tapered)
		if err != nil {
			return nil, err
		}
	}

	norm := u * cfg.sampleRate
	if norm == 0 {
		return nil, fmt.Errorf("spectrum: window power normalization is zero")
	}

	out := make([]float64, n)
	for i, c := range freqDomain {
		out[i] = (real(c)*real(c) + imag(c)*imag(c)) / norm
	}

	if cfg.twoSided {
		out = fft.ShiftReal(out)
	} else {
		out = out[:n/2+1]
	}

	if cfg.logMag {
		for i, v := range out {
			out[i] = core.LinearPowerToDB(v)
		}
	}

	return out, nil
}

// Bartlett estimates the PSD of x by partitioning it into
// non-overlapping segments of length nfft (the final partial segment
// is zero-padded), computing a rectangular-window periodogram per
// segment, and averaging.
func Bartlett(x []float64, nfft int, opts ...PSDOption) ([]float64, error) {
	if len(x) == 0 || nfft <= 0 {
		return nil, ErrEmptyInput
	}

	cfg := defaultPSDConfig()
	for _, o := range opts {
		o(&cfg)
	}
	cfg.winType = window.TypeRectangular // Bartlett's segments are unwindowed by definition.
	cfg.winOpts = nil

	segments := segmentNonOverlapping(x, nfft)

	return averageSegments(segments, cfg)
}

// Welch estimates the PSD of x using overlapping segments of length
// nfft stepping by nfft-noverlap, a modified periodogram per segment
// (via the configured window), and averaging.
func Welch(x []float64, nfft, noverlap int, opts ...PSDOption) ([]float64, error) {
	if len(x) == 0 || nfft <= 0 {
		return nil, ErrEmptyInput
	}
	if noverlap < 0 || noverlap >= nfft {
		return nil, fmt.Errorf("spectrum: noverlap must be in [0, nfft): %d", noverlap)
	}

	cfg := defaultPSDConfig()
	for _, o := range opts {
		o(&cfg)
	}

	step := nfft - noverlap
	segments := segmentOverlapping(x, nfft, step)

	return averageSegments(segments, cfg)
}

func averageSegments(segments [][]float64, cfg psdConfig) ([]float64, error) {
	if len(segments) == 0 {
		return nil, ErrEmptyInput
	}

	unlogged := cfg
	unlogged.logMag = false

	var sum []float64
	for _, seg := range segments {
		p, err := periodogramSegment(seg, unlogged)
		if err != nil {
			return nil, err
		}

		if sum == nil {
			sum = make([]float64, len(p))
		}

		for i, v := range p {
			sum[i] += v
		}
	}

	for i := range sum {
		sum[i] /= float64(len(segments))
	}

	if cfg.logMag {
		for i, v := range sum {
			sum[i] = core.LinearPowerToDB(v)
		}
	}

	return sum, nil
}

func segmentNonOverlapping(x []float64, nfft int) [][]float64 {
	var segments [][]float64
	for start := 0; start < len(x); start += nfft {
		end := start + nfft
		seg := make([]float64, nfft)
		if end > len(x) {
			copy(seg, x[start:])
		} else {
			copy(seg, x[start:end])
		}
		segments = append(segments, seg)
	}
	return segments
}

func segmentOverlapping(x []float64, nfft, step int) [][]float64 {
	var segments [][]float64
	for start := 0; start+nfft <= len(x); start += step {
		seg := make([]float64, nfft)
		copy(seg, x[start:start+nfft])
		segments = append(segments, seg)
	}
	if len(segments) == 0 {
		segments = segmentNonOverlapping(x, nfft)
	}
	return segments
}
