package sim

import (
	"fmt"

	"github.com/verdantlab/tubersim/config"
)

// ValidateConfig checks a configuration for structural validity before any
// simulation step executes. All failures wrap ErrInvalidConfig.
func ValidateConfig(cfg *config.Config) error {
	g := &cfg.Growth
	ch := &cfg.Chamber
	sc := &cfg.Scenario

	if sc.Days <= 0 {
		return fmt.Errorf("%w: horizon %d days, must be positive", ErrInvalidConfig, sc.Days)
	}
	if sc.GroundAreaM2 <= 0 {
		return fmt.Errorf("%w: ground area %.3f m², must be positive", ErrInvalidConfig, sc.GroundAreaM2)
	}
	if sc.InitialLeafDryG < 0 {
		return fmt.Errorf("%w: negative initial leaf mass %.3f g", ErrInvalidConfig, sc.InitialLeafDryG)
	}

	if g.LUE < 0 {
		return fmt.Errorf("%w: negative light-use efficiency %.3f", ErrInvalidConfig, g.LUE)
	}
	if g.SLA <= 0 {
		return fmt.Errorf("%w: specific leaf area %.4f, must be positive", ErrInvalidConfig, g.SLA)
	}
	if g.KExtinction < 0 {
		return fmt.Errorf("%w: negative extinction coefficient %.3f", ErrInvalidConfig, g.KExtinction)
	}
	if g.DryToFresh <= 0 || g.TuberDryFrac <= 0 {
		return fmt.Errorf("%w: dry matter fractions must be positive", ErrInvalidConfig)
	}
	if !(g.BaseTempC < g.OptTempC && g.OptTempC < g.MaxTempC) {
		return fmt.Errorf("%w: cardinal temperatures must satisfy base < opt < max (%.1f, %.1f, %.1f)",
			ErrInvalidConfig, g.BaseTempC, g.OptTempC, g.MaxTempC)
	}
	if !(g.CO2CompPPM < g.CO2RefPPM && g.CO2RefPPM < g.CO2SatPPM) {
		return fmt.Errorf("%w: CO₂ response must satisfy comp < ref < sat (%.0f, %.0f, %.0f)",
			ErrInvalidConfig, g.CO2CompPPM, g.CO2RefPPM, g.CO2SatPPM)
	}
	if !(g.TTTuberInit > 0 && g.TTTuberInit < g.TTMaturity) {
		return fmt.Errorf("%w: thermal-time thresholds must satisfy 0 < tuber_init < maturity (%.0f, %.0f)",
			ErrInvalidConfig, g.TTTuberInit, g.TTMaturity)
	}
	if g.MaintFracPerDay < 0 || g.MaintQ10 <= 0 {
		return fmt.Errorf("%w: maintenance respiration parameters out of range", ErrInvalidConfig)
	}
	if g.LeafBiasEarly < 0 || g.LeafBiasEarly > 1 || g.LeafBiasLate < 0 || g.LeafBiasLate > 1 {
		return fmt.Errorf("%w: leaf biases must lie in [0,1]", ErrInvalidConfig)
	}
	if !(g.TuberFracBase > 0 && g.TuberFracBase <= g.TuberFracMax && g.TuberFracMax <= 1) {
		return fmt.Errorf("%w: tuber fractions must satisfy 0 < base <= max <= 1 (%.2f, %.2f)",
			ErrInvalidConfig, g.TuberFracBase, g.TuberFracMax)
	}
	if g.PhotoperiodGain < 0 {
		return fmt.Errorf("%w: negative photoperiod gain %.3f", ErrInvalidConfig, g.PhotoperiodGain)
	}

	if ch.HeatCapacityKJPerK <= 0 {
		return fmt.Errorf("%w: thermal mass %.3f kJ/K, must be positive", ErrInvalidConfig, ch.HeatCapacityKJPerK)
	}
	if ch.LossKJPerDayPerK < 0 {
		return fmt.Errorf("%w: negative heat loss coefficient %.3f", ErrInvalidConfig, ch.LossKJPerDayPerK)
	}
	if ch.LEDPowerW < 0 || ch.OtherPowerW < 0 {
		return fmt.Errorf("%w: negative electrical load", ErrInvalidConfig)
	}
	if ch.CoolingKJPerDay < 0 {
		return fmt.Errorf("%w: negative cooling capacity %.1f kJ/day", ErrInvalidConfig, ch.CoolingKJPerDay)
	}
	if ch.CoolingKJPerDay > 0 && ch.CoolingCOP <= 0 {
		return fmt.Errorf("%w: cooling COP %.2f, must be positive when cooling is configured",
			ErrInvalidConfig, ch.CoolingCOP)
	}

	return nil
}
