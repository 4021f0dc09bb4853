package sim

import (
	"fmt"

	"github.com/verdantlab/tubersim/config"
	"github.com/verdantlab/tubersim/systems"
)

// Loop owns one simulation run. It validates the configuration once at
// construction, then advances the state one day at a time. A Loop must not
// be shared between concurrent runs; each run gets its own instance.
type Loop struct {
	cfg   *config.Config
	env   EnvironmentSource
	state State
}

// New creates a loop for the given configuration and environment source.
// Structural configuration errors are rejected here, before day 0.
// A nil env uses the constant environment from the scenario section.
func New(cfg *config.Config, env EnvironmentSource) (*Loop, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if env == nil {
		env = ScenarioEnvironment(&cfg.Scenario)
	}

	initial := State{
		LeafDryG:     cfg.Scenario.InitialLeafDryG,
		ChamberTempC: cfg.Scenario.TargetTempC,
	}
	initial.refreshDerived(cfg.Growth.SLA, cfg.Scenario.GroundAreaM2)

	return &Loop{cfg: cfg, env: env, state: initial}, nil
}

// State returns a copy of the current state.
func (l *Loop) State() State {
	return l.state
}

// Step advances the simulation by one day and returns the new state.
// The day's environment is validated before anything is touched; a failed
// step leaves the state exactly as it was.
func (l *Loop) Step() (State, error) {
	env := l.env.Day(l.state.Day)
	if err := env.Validate(); err != nil {
		return l.state, &StepError{Day: l.state.Day, Wrapped: err}
	}

	g := &l.cfg.Growth
	sc := &l.cfg.Scenario
	next := l.state

	// Stage 1: environmental response factors. Growth responds to the
	// simulated chamber temperature, which the controller drives toward
	// the setpoint.
	fT := systems.TempModifier(l.state.ChamberTempC, g)
	fCO2 := systems.CO2Modifier(env.CO2PPM, g)

	// Stage 2: canopy light interception
	fI := systems.InterceptionFraction(l.state.LAI, g.KExtinction)

	// Stage 3: gross photosynthetic production
	dli := systems.DLIFromPPFD(env.PPFD, env.PhotoperiodH)
	parMJ := systems.MolPARToMJ(dli)
	gross := systems.GrossGrowth(parMJ, fI, g.LUE, fT, fCO2)

	// Stage 4: maintenance respiration
	maint := systems.MaintenanceRespiration(l.state.TotalDryG, l.state.ChamberTempC, g)
	net := systems.NetGrowth(gross, maint)

	// Stage 5: partition new biomass by start-of-day thermal time
	fLeaf, fStem, fTuber := systems.PartitionFractions(l.state.ThermalTime, env.PhotoperiodH, g)
	next.LeafDryG += net * fLeaf
	next.StemDryG += net * fStem
	next.TuberDryG += net * fTuber
	next.refreshDerived(g.SLA, sc.GroundAreaM2)

	// Stage 6: chamber heat balance and energy accounting
	step := systems.ChamberStep(l.state.ChamberTempC, env.TargetTempC, env.PhotoperiodH, &l.cfg.Chamber)
	next.ChamberTempC = step.NextTempC
	next.EnergyKWh += step.EnergyKWh

	// Thermal time accumulates at the temperature in effect today
	next.ThermalTime += systems.ThermalTimeDelta(l.state.ChamberTempC, g.BaseTempC)

	next.Day++
	l.state = next
	return next, nil
}

// Run executes the loop for the configured horizon and returns the full
// ordered sequence of daily snapshots, starting with the initial state at
// day 0. The result is deterministic given identical inputs and fully
// re-computable from day 0: there is no hidden state and no mid-run
// checkpoint.
func (l *Loop) Run() ([]State, error) {
	days := l.cfg.Scenario.Days
	trace := make([]State, 0, days+1)
	trace = append(trace, l.state)

	for i := 0; i < days; i++ {
		s, err := l.Step()
		if err != nil {
			return trace, fmt.Errorf("simulation halted: %w", err)
		}
		trace = append(trace, s)
	}
	return trace, nil
}
