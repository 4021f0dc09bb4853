package sim

import (
	"fmt"

	"github.com/verdantlab/tubersim/config"
)

// Environment holds the user-set chamber conditions for one simulated day.
type Environment struct {
	PPFD         float64 // Light intensity (μmol photons m⁻² s⁻¹)
	PhotoperiodH float64 // Hours of light per day
	CO2PPM       float64 // CO₂ concentration
	TargetTempC  float64 // Chamber temperature setpoint
}

// Validate checks the environment for out-of-domain values.
func (e Environment) Validate() error {
	if e.PPFD < 0 {
		return fmt.Errorf("%w: negative PPFD %.3f", ErrInvalidInput, e.PPFD)
	}
	if e.PhotoperiodH < 0 || e.PhotoperiodH > 24 {
		return fmt.Errorf("%w: photoperiod %.3f h outside [0,24]", ErrInvalidInput, e.PhotoperiodH)
	}
	if e.CO2PPM < 0 {
		return fmt.Errorf("%w: negative CO₂ %.3f ppm", ErrInvalidInput, e.CO2PPM)
	}
	if e.TargetTempC < 0 {
		return fmt.Errorf("%w: negative setpoint %.3f °C", ErrInvalidInput, e.TargetTempC)
	}
	return nil
}

// EnvironmentSource supplies the environment for each simulated day.
type EnvironmentSource interface {
	// Day returns the environment in effect on the given day (0-based).
	Day(day int) Environment
}

// Constant is an EnvironmentSource that holds the same conditions every day.
type Constant Environment

// Day implements EnvironmentSource.
func (c Constant) Day(int) Environment { return Environment(c) }

// Schedule is a day-indexed EnvironmentSource. Days past the end of the
// schedule hold the last entry.
type Schedule []Environment

// Day implements EnvironmentSource.
func (s Schedule) Day(day int) Environment {
	if len(s) == 0 {
		return Environment{}
	}
	if day < 0 {
		day = 0
	}
	if day >= len(s) {
		day = len(s) - 1
	}
	return s[day]
}

// ScenarioEnvironment builds the constant environment described by the
// scenario section of a config.
func ScenarioEnvironment(sc *config.ScenarioConfig) Constant {
	return Constant{
		PPFD:         sc.PPFD,
		PhotoperiodH: sc.PhotoperiodH,
		CO2PPM:       sc.CO2PPM,
		TargetTempC:  sc.TargetTempC,
	}
}
