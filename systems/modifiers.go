// Package systems implements the per-day stage functions of the twin:
// environmental modifiers, light interception, photosynthesis, respiration,
// partitioning, and the chamber heat balance. Each stage is a pure function
// of its inputs so it can be tested without running the full loop.
package systems

import "github.com/verdantlab/tubersim/config"

// TempModifier returns the dimensionless temperature response factor in [0,1].
// Triangle-shaped over the cardinal temperatures: 0 at or below base, 1 at
// the optimum, 0 at or above the maximum.
func TempModifier(tempC float64, g *config.GrowthConfig) float64 {
	if tempC <= g.BaseTempC || tempC >= g.MaxTempC {
		return 0
	}
	if tempC == g.OptTempC {
		return 1
	}
	if tempC < g.OptTempC {
		return (tempC - g.BaseTempC) / (g.OptTempC - g.BaseTempC)
	}
	return (g.MaxTempC - tempC) / (g.MaxTempC - g.OptTempC)
}

// CO2Modifier returns the dimensionless CO₂ response factor in [0,1].
// Zero at or below the compensation point, rising to 0.5 at the reference
// concentration, then saturating toward 1 at the saturation concentration.
func CO2Modifier(co2PPM float64, g *config.GrowthConfig) float64 {
	if co2PPM <= g.CO2CompPPM {
		return 0
	}
	if co2PPM < g.CO2RefPPM {
		span := g.CO2RefPPM - g.CO2CompPPM
		if span <= 0 {
			return 0.5
		}
		return 0.5 * (co2PPM - g.CO2CompPPM) / span
	}
	x := (co2PPM - g.CO2RefPPM) / (g.CO2SatPPM - g.CO2RefPPM + 1e-9)
	return clamp(0.5+0.5*clamp(x, 0, 1), 0, 1)
}

// clamp clamps x to [min, max].
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
