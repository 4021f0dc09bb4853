package systems

import (
	"math"
	"testing"
)

func TestGrossGrowth_ZeroRadiationYieldsZero(t *testing.T) {
	if g := GrossGrowth(0, 0.8, 1.3, 1.0, 1.0); g != 0 {
		t.Errorf("zero radiation should yield zero growth, got %f", g)
	}
}

func TestGrossGrowth_ZeroModifierShutsDownGrowth(t *testing.T) {
	if g := GrossGrowth(3.3, 0.8, 1.3, 0, 1.0); g != 0 {
		t.Errorf("zero temperature factor should yield zero growth, got %f", g)
	}
	if g := GrossGrowth(3.3, 0.8, 1.3, 1.0, 0); g != 0 {
		t.Errorf("zero CO₂ factor should yield zero growth, got %f", g)
	}
}

func TestGrossGrowth_ScalesLinearlyWithEachFactor(t *testing.T) {
	base := GrossGrowth(3.3, 0.5, 1.3, 0.8, 0.75)

	if g := GrossGrowth(6.6, 0.5, 1.3, 0.8, 0.75); math.Abs(g-2*base) > 1e-12 {
		t.Errorf("doubling radiation: got %f, want %f", g, 2*base)
	}
	if g := GrossGrowth(3.3, 1.0, 1.3, 0.8, 0.75); math.Abs(g-2*base) > 1e-12 {
		t.Errorf("doubling interception: got %f, want %f", g, 2*base)
	}
}

func TestGrossGrowth_PeakAtOptimalConditions(t *testing.T) {
	// fT = fCO2 = 1 is the ceiling for any given radiation
	peak := GrossGrowth(3.3, 0.8, 1.3, 1.0, 1.0)
	for _, f := range []float64{0.1, 0.5, 0.9} {
		if g := GrossGrowth(3.3, 0.8, 1.3, f, 1.0); g > peak {
			t.Errorf("growth at fT=%.1f (%f) exceeds peak (%f)", f, g, peak)
		}
	}
}

func TestGrossGrowth_NeverNegative(t *testing.T) {
	if g := GrossGrowth(-5, 0.8, 1.3, 1.0, 1.0); g != 0 {
		t.Errorf("negative radiation should clamp to zero growth, got %f", g)
	}
}
