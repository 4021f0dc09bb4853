// Package sim drives the daily simulation loop of the potato chamber twin:
// one mutable state advanced day by day through the stage functions in the
// systems package.
package sim

// State is the complete simulation state at the start of a day. It is a
// plain value: the loop hands out copies, so a host holding a snapshot never
// observes a later mutation.
type State struct {
	Day         int     // Day counter, 0 at the initial state
	ThermalTime float64 // Accumulated degree-days above base temperature

	LeafDryG  float64 // Dry mass pools (g m⁻²)
	StemDryG  float64
	TuberDryG float64
	TotalDryG float64 // Always LeafDryG + StemDryG + TuberDryG

	LAI          float64 // Leaf area index, derived from leaf mass × SLA / area
	ChamberTempC float64 // Simulated chamber air temperature
	EnergyKWh    float64 // Cumulative electrical energy drawn by the chamber
}

// refreshDerived recomputes TotalDryG and LAI from the mass pools.
func (s *State) refreshDerived(sla, areaM2 float64) {
	s.TotalDryG = s.LeafDryG + s.StemDryG + s.TuberDryG
	lai := s.LeafDryG * sla / areaM2
	if lai < 0 {
		lai = 0
	}
	s.LAI = lai
}
