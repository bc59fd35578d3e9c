package pass

import (
	"math"
	"testing"

	"github.com/signalkit/spectral/internal/polynomial"
)

func TestDesignAllFamiliesAndBands(t *testing.T) {
	families := []Family{Butterworth, Chebyshev1, Chebyshev2, Elliptic}
	cases := []struct {
		band  Band
		edges []float64
		order int
	}{
		{LowPass, []float64{0.3}, 4},
		{HighPass, []float64{0.3}, 4},
		{BandPass, []float64{0.2, 0.4}, 4},
		{BandStop, []float64{0.2, 0.4}, 4},
	}

	for _, fam := range families {
		for _, c := range cases {
			sections, err := Design(fam, c.band, c.order, c.edges, 1, 40)
			if err != nil {
				t.Errorf("Design(family=%v, band=%v): %v", fam, c.band, err)
				continue
			}
			if len(sections) == 0 {
				t.Errorf("Design(family=%v, band=%v): no sections produced", fam, c.band)
			}
			for _, s := range sections {
				if math.IsNaN(s.B0) || math.IsNaN(s.A1) || math.IsInf(s.B0, 0) || math.IsInf(s.A1, 0) {
					t.Errorf("Design(family=%v, band=%v): non-finite section %+v", fam, c.band, s)
				}
			}
		}
	}
}

func TestDesignRejectsOddOrderBandpass(t *testing.T) {
	if _, err := Design(Butterworth, BandPass, 3, []float64{0.2, 0.4}, 1, 40); err != ErrInvalidOrder {
		t.Errorf("err = %v, want ErrInvalidOrder", err)
	}
}

func TestPolyToSOSReconstructsOriginalPoles(t *testing.T) {
	// a(w) = (1 - 2*0.5*w + 0.5^2... ) built from two independent
	// conjugate pole pairs at radius 0.5 and 0.7, angle pi/4 and pi/3.
	p1 := complex(0.5*math.Cos(math.Pi/4), 0.5*math.Sin(math.Pi/4))
	p2 := complex(0.7*math.Cos(math.Pi/3), 0.7*math.Sin(math.Pi/3))

	// Build a(w) directly as the reversed z-domain monic expansion so
	// that reverseCopy(a) round-trips back to these same poles.
	zDomain, _ := polynomial.ExpandRoots([]complex128{p1, cmplxConj(p1), p2, cmplxConj(p2)}, 4)
	aRev := make([]float64, 5)
	for i, v := range zDomain {
		aRev[i] = real(v)
	}
	a := reverseCopy(aRev)
	b := []float64{1, 0, 0, 0, 0}

	sections := polyToSOS(b, a)
	if len(sections) != 2 {
		t.Fatalf("len(sections) = %d, want 2", len(sections))
	}

	for _, s := range sections {
		if math.IsNaN(s.A1) || math.IsNaN(s.A2) {
			t.Errorf("section has NaN: %+v", s)
		}
	}
}

func cmplxConj(c complex128) complex128 {
	return complex(real(c), -imag(c))
}
