package main

import (
	"math"
	"sync"

	"github.com/verdantlab/tubersim/config"
	"github.com/verdantlab/tubersim/sim"
	"github.com/verdantlab/tubersim/telemetry"
)

// FitnessEvaluator runs headless simulations and computes fitness for a
// candidate set of scenario controls. Lower is better: fitness is the
// negated tuber fresh yield per kWh drawn by the chamber.
type FitnessEvaluator struct {
	params  *ParamVector
	days    int
	baseCfg *config.Config

	mu          sync.Mutex
	lastSummary telemetry.RunSummary
}

// NewFitnessEvaluator creates a new evaluator over the given base config.
func NewFitnessEvaluator(params *ParamVector, days int, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:  params,
		days:    days,
		baseCfg: baseCfg,
	}
}

// LastSummary returns the run summary from the most recent evaluation.
func (fe *FitnessEvaluator) LastSummary() telemetry.RunSummary {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastSummary
}

// Evaluate runs one simulation with the candidate controls and returns the
// fitness. Candidates that fail validation or produce no yield score +Inf
// so the optimizer moves away from them.
func (fe *FitnessEvaluator) Evaluate(raw []float64) float64 {
	clamped := fe.params.Clamp(raw)

	// Copy the base config so candidates never contaminate each other
	cfg := *fe.baseCfg
	cfg.Scenario.Days = fe.days
	fe.params.ApplyToConfig(&cfg, clamped)

	loop, err := sim.New(&cfg, nil)
	if err != nil {
		return math.Inf(1)
	}

	states, err := loop.Run()
	if err != nil {
		return math.Inf(1)
	}

	summary := telemetry.Summarize(telemetry.Trace(states, &cfg.Growth))

	fe.mu.Lock()
	fe.lastSummary = summary
	fe.mu.Unlock()

	if summary.TuberFreshG <= 0 || summary.EnergyKWh <= 0 {
		return math.Inf(1)
	}
	return -summary.TuberFreshG / summary.EnergyKWh
}
