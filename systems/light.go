package systems

import "math"

// mjPerMolPAR converts moles of PAR photons to megajoules of energy.
const mjPerMolPAR = 0.219

// DLIFromPPFD converts light intensity (μmol m⁻² s⁻¹) and photoperiod (h)
// to the daily light integral (mol photons m⁻² d⁻¹).
func DLIFromPPFD(ppfd, photoperiodH float64) float64 {
	return ppfd * photoperiodH * 3600.0 / 1e6
}

// MolPARToMJ converts moles of PAR photons to megajoules.
func MolPARToMJ(molPAR float64) float64 {
	return molPAR * mjPerMolPAR
}

// LeafAreaIndex derives LAI from leaf dry mass, specific leaf area, and
// ground area. Never negative.
func LeafAreaIndex(leafDryG, sla, areaM2 float64) float64 {
	lai := (leafDryG * sla) / math.Max(areaM2, 1e-9)
	if lai < 0 {
		return 0
	}
	return lai
}

// InterceptionFraction returns the fraction of incident radiation intercepted
// by the canopy (Beer-Lambert), always in [0,1]. Negative LAI is treated as
// bare soil.
func InterceptionFraction(lai, k float64) float64 {
	if lai <= 0 {
		return 0
	}
	return clamp(1.0-math.Exp(-k*lai), 0, 1)
}
