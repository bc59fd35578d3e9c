package pass

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/signalkit/spectral/dsp/filter/biquad"
	"github.com/signalkit/spectral/internal/polynomial"
)

// polyToSOS factors a full-order digital transfer function (b, a), both
// in ascending powers of z^-1 and equal length, into a cascade of
// second-order sections. It normalizes by a[0] first (per the data
// model's A[0] normalization), finds the roots of the reversed
// coefficient vectors — which land on the z-domain poles/zeros directly
// — pairs conjugates into [1, -2Re(r), |r|^2] quadratics (real roots
// pair with another real root, or stand alone as a first-order factor),
// and distributes the overall numerator gain B[0] as its
// num-sections-th root across every section, per spec.md's SOS
// factorization rule.
func polyToSOS(b, a []float64) []biquad.Coefficients {
	ord := len(a) - 1
	if ord <= 0 || len(b) != len(a) || a[0] == 0 {
		return nil
	}

	aNorm := make([]float64, len(a))
	bNorm := make([]float64, len(b))
	inv := 1 / a[0]
	for i := range a {
		aNorm[i] = a[i] * inv
		bNorm[i] = b[i] * inv
	}

	poleRoots, err := polynomial.Roots(reverseCopy(aNorm))
	if err != nil {
		return nil
	}

	zeroRoots := rootsOfTrimmed(bNorm)

	poleSections := rootsToSections(poleRoots)
	zeroSections := rootsToSections(zeroRoots)

	numSections := len(poleSections)
	if numSections == 0 {
		return nil
	}

	overallGain := bNorm[0]
	sectionGainMag := math.Pow(math.Abs(overallGain), 1.0/float64(numSections))
	sign := 1.0
	if overallGain < 0 {
		sign = -1.0
	}

	sections := make([]biquad.Coefficients, numSections)
	for i := range sections {
		b0, b1, b2 := 1.0, 0.0, 0.0
		if i < len(zeroSections) {
			zs := zeroSections[i]
			b0, b1, b2 = zs[0], zs[1], zs[2]
		}

		g := sectionGainMag
		if i == 0 {
			g *= sign
		}

		ps := poleSections[i]
		sections[i] = biquad.Coefficients{
			B0: g * b0,
			B1: g * b1,
			B2: g * b2,
			A1: ps[1],
			A2: ps[2],
		}
	}

	return sections
}

// rootsOfTrimmed finds the z-domain roots implied by p's nonzero low-
// order core, tolerating high-order zero padding (zeros "at infinity"
// that never become explicit biquad factors).
func rootsOfTrimmed(p []float64) []complex128 {
	deg := -1
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			deg = i
			break
		}
	}
	if deg <= 0 {
		return nil
	}

	roots, err := polynomial.Roots(reverseCopy(p[:deg+1]))
	if err != nil {
		return nil
	}

	return roots
}

func reverseCopy(a []float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[len(a)-1-i] = v
	}

	return out
}

// rootsToSections groups complex roots into real second-order factors
// (a conjugate pair, or two real roots), each as [1, -sum, product] —
// which specializes to [1, -2Re(r), |r|^2] for a conjugate pair — or a
// first-order factor [1, -r, 0] for one leftover real root.
func rootsToSections(roots []complex128) [][3]float64 {
	const tol = 1e-6

	sort.Slice(roots, func(i, j int) bool {
		if imag(roots[i]) != imag(roots[j]) {
			return imag(roots[i]) < imag(roots[j])
		}
		return real(roots[i]) < real(roots[j])
	})

	used := make([]bool, len(roots))
	var sections [][3]float64

	for i, r := range roots {
		if used[i] {
			continue
		}
		used[i] = true

		if math.Abs(imag(r)) > tol {
			partner := findPartner(roots, used, i, func(s complex128) bool {
				return cmplx.Abs(s-cmplx.Conj(r)) < tol*(1+cmplx.Abs(r))
			})
			if partner >= 0 {
				used[partner] = true
			}
			sections = append(sections, [3]float64{1, -2 * real(r), real(r)*real(r) + imag(r)*imag(r)})
			continue
		}

		partner := findPartner(roots, used, i, func(s complex128) bool {
			return math.Abs(imag(s)) <= tol
		})
		if partner >= 0 {
			used[partner] = true
			sections = append(sections, [3]float64{1, -(real(r) + real(roots[partner])), real(r) * real(roots[partner])})
		} else {
			sections = append(sections, [3]float64{1, -real(r), 0})
		}
	}

	return sections
}

func findPartner(roots []complex128, used []bool, from int, match func(complex128) bool) int {
	for j := from + 1; j < len(roots); j++ {
		if !used[j] && match(roots[j]) {
			return j
		}
	}

	return -1
}
