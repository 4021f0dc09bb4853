// Package telemetry turns simulation state into trace records, CSV output,
// and run summaries for the plotting and dashboard layers.
package telemetry

import (
	"github.com/verdantlab/tubersim/config"
	"github.com/verdantlab/tubersim/sim"
)

// DayRecord is the per-day trace row written to trace.csv and streamed to
// dashboard clients.
type DayRecord struct {
	Day          int     `csv:"day" json:"day"`
	ThermalTime  float64 `csv:"thermal_time" json:"thermal_time"`
	LeafDryG     float64 `csv:"leaf_dry_g" json:"leaf_dry_g"`
	StemDryG     float64 `csv:"stem_dry_g" json:"stem_dry_g"`
	TuberDryG    float64 `csv:"tuber_dry_g" json:"tuber_dry_g"`
	TotalDryG    float64 `csv:"total_dry_g" json:"total_dry_g"`
	FreshTotalG  float64 `csv:"fresh_total_g" json:"fresh_total_g"`
	TuberFreshG  float64 `csv:"tuber_fresh_g" json:"tuber_fresh_g"`
	LAI          float64 `csv:"lai" json:"lai"`
	ChamberTempC float64 `csv:"chamber_temp_c" json:"chamber_temp_c"`
	EnergyKWh    float64 `csv:"cum_energy_kwh" json:"cum_energy_kwh"`
}

// Record converts a state snapshot to a trace row, deriving fresh masses
// from the dry-matter fractions.
func Record(s sim.State, g *config.GrowthConfig) DayRecord {
	return DayRecord{
		Day:          s.Day,
		ThermalTime:  s.ThermalTime,
		LeafDryG:     s.LeafDryG,
		StemDryG:     s.StemDryG,
		TuberDryG:    s.TuberDryG,
		TotalDryG:    s.TotalDryG,
		FreshTotalG:  s.TotalDryG / g.DryToFresh,
		TuberFreshG:  s.TuberDryG / g.TuberDryFrac,
		LAI:          s.LAI,
		ChamberTempC: s.ChamberTempC,
		EnergyKWh:    s.EnergyKWh,
	}
}

// Trace converts a full run's snapshots to trace rows.
func Trace(states []sim.State, g *config.GrowthConfig) []DayRecord {
	records := make([]DayRecord, len(states))
	for i, s := range states {
		records[i] = Record(s, g)
	}
	return records
}
