package systems

import "github.com/verdantlab/tubersim/config"

// PartitionFractions returns the allocation of new biomass among leaf, stem,
// and tuber for the given thermal time and photoperiod. The three fractions
// always sum to exactly 1.
//
// Before the tuber-initiation threshold the tuber fraction is zero and new
// mass splits between leaf and stem by the early leaf bias. From initiation
// onward the tuber fraction ramps linearly with thermal time from
// TuberFracBase toward TuberFracMax at maturity, boosted by short days; the
// remainder splits by the late leaf bias.
func PartitionFractions(tt, photoperiodH float64, g *config.GrowthConfig) (fLeaf, fStem, fTuber float64) {
	if tt < g.TTTuberInit {
		return g.LeafBiasEarly, 1 - g.LeafBiasEarly, 0
	}

	ramp := 0.0
	if span := g.TTMaturity - g.TTTuberInit; span > 0 {
		ramp = clamp((tt-g.TTTuberInit)/span, 0, 1)
	}

	// Shorter days push allocation toward tubers (photoperiod sensitivity)
	photof := clamp((16.0-photoperiodH)/6.0, 0, 1)

	fTuber = g.TuberFracBase + (g.TuberFracMax-g.TuberFracBase)*ramp + g.PhotoperiodGain*photof
	fTuber = clamp(fTuber, 0, g.TuberFracMax)

	fLeaf = (1 - fTuber) * g.LeafBiasLate
	fStem = 1 - fTuber - fLeaf
	return fLeaf, fStem, fTuber
}
