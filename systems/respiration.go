package systems

import (
	"math"

	"github.com/verdantlab/tubersim/config"
)

// MaintenanceRespiration returns the daily maintenance loss (dry g m⁻² d⁻¹)
// for the given standing biomass at the given chamber temperature. The base
// fraction is scaled by a Q10 term referenced to MaintRefTempC.
func MaintenanceRespiration(totalDryG, tempC float64, g *config.GrowthConfig) float64 {
	if totalDryG <= 0 {
		return 0
	}
	q10 := g.MaintQ10
	if q10 <= 0 {
		q10 = 1
	}
	scale := math.Pow(q10, (tempC-g.MaintRefTempC)/10.0)
	return g.MaintFracPerDay * totalDryG * scale
}

// NetGrowth subtracts maintenance respiration from gross growth, floored at
// zero. The model has no senescence pathway, so standing mass never shrinks.
func NetGrowth(gross, maintenance float64) float64 {
	net := gross - maintenance
	if net < 0 {
		return 0
	}
	return net
}
