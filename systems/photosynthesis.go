package systems

// GrossGrowth returns the gross daily biomass increment (dry g m⁻² d⁻¹) from
// incident PAR energy, the intercepted fraction, light-use efficiency, and
// the temperature and CO₂ modifiers. Zero radiation yields zero growth, not
// an error.
func GrossGrowth(parMJ, fIntercept, lue, fT, fCO2 float64) float64 {
	gross := lue * (parMJ * fIntercept) * fT * fCO2
	if gross < 0 {
		return 0
	}
	return gross
}
