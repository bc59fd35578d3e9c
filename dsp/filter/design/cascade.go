package design

import (
	"math"

	"github.com/signalkit/spectral/dsp/filter/biquad"
)

// cascadeFromSections builds a second-order-section cascade by calling
// section(i) for i counting down from the highest conjugate-pair index
// to 0, optionally appending a trailing first-order section for odd
// orders. This is the shared shape behind ButterworthLP/HP and
// Chebyshev1/2 LP/HP below: each differs only in how an individual
// section's coefficients are derived, not in how the cascade is
// assembled or how the odd-order remainder is handled.
func cascadeFromSections(order int, section func(i int) biquad.Coefficients, firstOrder func() biquad.Coefficients) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	for i := order/2 - 1; i >= 0; i-- {
		sections = append(sections, section(i))
	}
	if order%2 != 0 {
		sections = append(sections, firstOrder())
	}
	return sections
}

// ButterworthLP designs a lowpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return cascadeFromSections(order,
		func(i int) biquad.Coefficients { return Lowpass(freq, butterworthQ(order, i), sampleRate) },
		func() biquad.Coefficients { return butterworthFirstOrderLP(freq, sampleRate) },
	)
}

// ButterworthHP designs a highpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return cascadeFromSections(order,
		func(i int) biquad.Coefficients { return Highpass(freq, butterworthQ(order, i), sampleRate) },
		func() biquad.Coefficients { return butterworthFirstOrderHP(freq, sampleRate) },
	)
}

// Chebyshev1LP designs a lowpass Chebyshev Type I cascade.
//
// The coefficient formulas are ported from mfw legacy MFFilter.pas
// TMFDSPChebyshev1LP.CalculateCoefficients.
func Chebyshev1LP(freq float64, order int, rippleDB, sampleRate float64) []biquad.Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return nil
	}
	r0, r1 := cheby1RippleFactors(order, rippleDB)
	k2 := k * k

	return cascadeFromSections(order,
		func(i int) biquad.Coefficients {
			tt := math.Cos(float64(2*i+1) * math.Pi / (2 * float64(order)))
			b := 1 / (r0 - tt*tt)
			a := k * 2 * b * r1 * tt
			t := 1 / (a + b + k2)
			return biquad.Coefficients{
				B0: k2 * t,
				B1: 2 * k2 * t,
				B2: k2 * t,
				A1: 2 * (b - k2) * t,
				A2: (a - k2 - b) * t,
			}
		},
		func() biquad.Coefficients {
			// Legacy code leaves odd-order Chebyshev first-order as TODO.
			// Use Butterworth first-order section for deterministic behavior.
			return butterworthFirstOrderLP(freq, sampleRate)
		},
	)
}

// Chebyshev1HP designs a highpass Chebyshev Type I cascade.
//
// The coefficient formulas are ported from mfw legacy MFFilter.pas
// TMFDSPChebyshev1HP.CalculateCoefficients.
func Chebyshev1HP(freq float64, order int, rippleDB, sampleRate float64) []biquad.Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return nil
	}
	r0, r1 := cheby1RippleFactors(order, rippleDB)
	k2 := k * k

	return cascadeFromSections(order,
		func(i int) biquad.Coefficients {
			s := math.Sin(float64(2*i+1) * math.Pi / (4 * float64(order)))
			tt := s * s
			a := 1 / (r0 + 4*tt - 4*tt*tt - 1)
			b := 2 * k * a * r1 * (1 - 2*tt)
			t := 1 / (b + 1 + a*k2)
			return biquad.Coefficients{
				B0: t,
				B1: -2 * t,
				B2: t,
				A1: 2 * (1 - a*k2) * t,
				A2: (b - 1 - a*k2) * t,
			}
		},
		func() biquad.Coefficients {
			// Legacy code leaves odd-order Chebyshev first-order as TODO.
			// Use Butterworth first-order section for deterministic behavior.
			return butterworthFirstOrderHP(freq, sampleRate)
		},
	)
}

// Chebyshev2LP designs a lowpass Chebyshev Type II cascade.
//
// The coefficient formulas are based on mfw legacy MFFilter.pas
// TMFDSPChebyshev2LP.CalculateCoefficients, with a corrected angle term:
// cos((2i+1)*pi/(2N)). The legacy code omits pi in that term.
func Chebyshev2LP(freq float64, order int, rippleDB, sampleRate float64) []biquad.Coefficients {
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return nil
	}
	r0, r1 := cheby2RippleFactors(order, rippleDB)
	k2 := k * k

	return cascadeFromSections(order,
		func(i int) biquad.Coefficients {
			tt := math.Cos(float64(2*i+1) * math.Pi / (2 * float64(order)))
			c0 := 1 - tt*tt
			c1 := 2 * tt * r1 * k
			t := 1 / (c1 + k2 + r0 + c0)
			return biquad.Coefficients{
				B0: (k2 + c0) * t,
				B1: 2 * (k2 - c0) * t,
				B2: (k2 + c0) * t,
				A1: 2 * (-k2 + r0 + c0) * t,
				A2: (c1 - k2 - r0 - c0) * t,
			}
		},
		func() biquad.Coefficients {
			// Legacy code does not implement odd-order Type II sections.
			return butterworthFirstOrderLP(freq, sampleRate)
		},
	)
}

// Chebyshev2HP designs a highpass Chebyshev Type II cascade.
//
// The coefficient formulas are ported from mfw legacy MFFilter.pas
// TMFDSPChebyshev2HP.CalculateCoefficients.
//
// Unlike its siblings, the legacy port iterates sections in ascending
// index order; that ordering is preserved here to match the long-shipped
// coefficient sequence (section order doesn't affect the overall transfer
// function, only which section appears first in the cascade).
func Chebyshev2HP(freq float64, order int, rippleDB, sampleRate float64) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}
	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return nil
	}
	r0, r1 := cheby2RippleFactors(order, rippleDB)
	sections := make([]biquad.Coefficients, 0, (order+1)/2)
	k2 := k * k

	for i := 0; i < order/2; i++ {
		tt := math.Cos(float64(2*i+1) * math.Pi / (2 * float64(order)))
		c0 := 1 - tt*tt
		c1 := 2 * tt * r1 * k
		t := 1 / (c1 + k2 + r0 + c0)
		sections = append(sections, biquad.Coefficients{
			B0: (c0 + k2) * t,
			B1: 2 * (c0 - k2) * t,
			B2: (c0 + k2) * t,
			A1: 2 * (k2 - r0 - c0) * t,
			A2: (c1 - k2 - r0 - c0) * t,
		})
	}
	if order%2 != 0 {
		// Legacy code does not implement odd-order Type II sections.
		sections = append(sections, butterworthFirstOrderHP(freq, sampleRate))
	}
	return sections
}

func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))
	s := math.Sin(theta)
	if s == 0 {
		return defaultQ
	}
	return 1 / (2 * s)
}

func bilinearK(freq, sampleRate float64) (float64, bool) {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return 0, false
	}
	return math.Tan(math.Pi * freq / sampleRate), true
}

func cheby1RippleFactors(order int, rippleDB float64) (float64, float64) {
	if order <= 0 {
		return 1, 0
	}
	if rippleDB <= 0 {
		rippleDB = 1
	}
	t := math.Asinh(rippleDB) / float64(order)
	r1 := math.Sinh(t)
	r0 := math.Cosh(t)
	return r0 * r0, r1
}

func cheby2RippleFactors(order int, rippleDB float64) (float64, float64) {
	if order <= 0 {
		return 1, 0
	}
	if rippleDB <= 0 {
		rippleDB = 1
	}
	t := math.Asinh(1/rippleDB) / float64(order)
	r1 := math.Sinh(t)
	r0 := math.Cosh(t)
	return r0 * r0, r1
}

func butterworthFirstOrderLP(freq, sampleRate float64) biquad.Coefficients {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return biquad.Coefficients{}
	}
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)
	return biquad.Coefficients{
		B0: k * norm,
		B1: k * norm,
		B2: 0,
		A1: (k - 1) * norm,
		A2: 0,
	}
}

func butterworthFirstOrderHP(freq, sampleRate float64) biquad.Coefficients {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return biquad.Coefficients{}
	}
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)
	return biquad.Coefficients{
		B0: norm,
		B1: -norm,
		B2: 0,
		A1: (k - 1) * norm,
		A2: 0,
	}
}
