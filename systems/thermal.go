package systems

import "github.com/verdantlab/tubersim/config"

// secondsPerHour, kJ per kWh.
const (
	secondsPerHour = 3600.0
	kjPerKWh       = 3600.0
)

// ThermalStep holds the result of one daily chamber heat-balance step.
type ThermalStep struct {
	NextTempC float64 // Chamber temperature at the start of the next day
	HeatInKJ  float64 // LED + other electrical heat released into the chamber
	LossKJ    float64 // Conductive loss to the ambient room
	CoolingKJ float64 // Heat removed by the cooling system
	EnergyKWh float64 // Electrical draw for the day: lighting + loads + cooling
}

// ChamberStep advances the chamber temperature one day using a discrete
// first-order energy balance: T_next = T + (Qin - Qloss - Qcool) / C.
//
// LED heat is prorated by photoperiod; other loads run around the clock.
// Cooling engages only above the setpoint, removes at most the configured
// daily capacity, and never overshoots below the setpoint. The electrical
// draw of cooling is its thermal load divided by the coefficient of
// performance.
func ChamberStep(tempC, targetC, photoperiodH float64, ch *config.ChamberConfig) ThermalStep {
	// Electrical heat released into the chamber (W -> kJ/day)
	qLED := ch.LEDPowerW * photoperiodH * secondsPerHour / 1000.0
	qOther := ch.OtherPowerW * 86400.0 / 1000.0
	qIn := qLED + qOther

	// Conductive loss to ambient
	var qLoss float64
	if dT := tempC - ch.AmbientTempC; dT > 0 {
		qLoss = ch.LossKJPerDayPerK * dT
	}

	// Cooling load if above setpoint, bounded by capacity and by the heat
	// needed to bring the chamber back to the setpoint
	var qCool float64
	if tempC > targetC {
		qCool = (tempC - targetC) * ch.HeatCapacityKJPerK
		if qCool > ch.CoolingKJPerDay {
			qCool = ch.CoolingKJPerDay
		}
	}

	next := tempC + (qIn-qLoss-qCool)/ch.HeatCapacityKJPerK

	energy := ch.LEDPowerW*photoperiodH/1000.0 + ch.OtherPowerW*24.0/1000.0
	if qCool > 0 && ch.CoolingCOP > 0 {
		energy += qCool / kjPerKWh / ch.CoolingCOP
	}

	return ThermalStep{
		NextTempC: next,
		HeatInKJ:  qIn,
		LossKJ:    qLoss,
		CoolingKJ: qCool,
		EnergyKWh: energy,
	}
}

// ThermalTimeDelta returns the degree-days accumulated for one day at the
// given chamber temperature. Never negative.
func ThermalTimeDelta(tempC, baseTempC float64) float64 {
	if d := tempC - baseTempC; d > 0 {
		return d
	}
	return 0
}
