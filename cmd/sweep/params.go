// Package main provides CMA-ES search over scenario controls for the chamber
// twin, maximizing tuber yield per unit of electrical energy.
package main

import (
	"github.com/verdantlab/tubersim/config"
)

// ParamSpec defines a single optimizable control.
type ParamSpec struct {
	Name    string  // Human-readable name
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable controls.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable scenario controls.
// Bounds mirror the ranges the chamber hardware supports.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "ppfd", Min: 150, Max: 800, Default: 350},
			{Name: "photoperiod_h", Min: 10, Max: 20, Default: 12},
			{Name: "co2_ppm", Min: 400, Max: 2000, Default: 800},
			{Name: "target_temp_c", Min: 12, Max: 26, Default: 18},
		},
	}
}

// Dim returns the number of controls.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default control values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw control values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw control values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp bounds raw control values to their spec ranges.
func (pv *ParamVector) Clamp(raw []float64) []float64 {
	clamped := make([]float64, len(raw))
	for i, spec := range pv.Specs {
		v := raw[i]
		if v < spec.Min {
			v = spec.Min
		}
		if v > spec.Max {
			v = spec.Max
		}
		clamped[i] = v
	}
	return clamped
}

// ApplyToConfig writes the control values into a config's scenario section.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	cfg.Scenario.PPFD = values[0]
	cfg.Scenario.PhotoperiodH = values[1]
	cfg.Scenario.CO2PPM = values[2]
	cfg.Scenario.TargetTempC = values[3]
}
