package systems

import (
	"math"
	"testing"
)

func TestChamberStep_HeatInputRaisesTemperature(t *testing.T) {
	ch := defaultChamber(t)

	// Start at ambient and setpoint: no loss, no cooling, only heat input
	step := ChamberStep(ch.AmbientTempC, ch.AmbientTempC+10, 12, ch)
	if step.NextTempC <= ch.AmbientTempC {
		t.Errorf("temperature should rise from electrical heat: %f -> %f", ch.AmbientTempC, step.NextTempC)
	}
	if step.LossKJ != 0 {
		t.Errorf("no loss expected at ambient, got %f kJ", step.LossKJ)
	}
	if step.CoolingKJ != 0 {
		t.Errorf("no cooling expected below setpoint, got %f kJ", step.CoolingKJ)
	}
}

func TestChamberStep_FirstOrderBalance(t *testing.T) {
	ch := defaultChamber(t)

	tempC, targetC := 38.0, 18.0
	step := ChamberStep(tempC, targetC, 12, ch)

	want := tempC + (step.HeatInKJ-step.LossKJ-step.CoolingKJ)/ch.HeatCapacityKJPerK
	if math.Abs(step.NextTempC-want) > 1e-9 {
		t.Errorf("NextTempC = %f, want %f", step.NextTempC, want)
	}
}

func TestChamberStep_LEDHeatProratedByPhotoperiod(t *testing.T) {
	ch := defaultChamber(t)

	dark := ChamberStep(20, 18, 0, ch)
	lit := ChamberStep(20, 18, 12, ch)

	wantDelta := ch.LEDPowerW * 12 * 3600 / 1000
	if math.Abs((lit.HeatInKJ-dark.HeatInKJ)-wantDelta) > 1e-9 {
		t.Errorf("LED heat over 12 h = %f kJ, want %f", lit.HeatInKJ-dark.HeatInKJ, wantDelta)
	}
}

func TestChamberStep_HeatLossProportionalToGradient(t *testing.T) {
	ch := defaultChamber(t)

	step := ChamberStep(ch.AmbientTempC+5, ch.AmbientTempC+20, 12, ch)
	want := ch.LossKJPerDayPerK * 5
	if math.Abs(step.LossKJ-want) > 1e-9 {
		t.Errorf("loss at +5K = %f kJ, want %f", step.LossKJ, want)
	}
}

func TestChamberStep_CoolingOnlyAboveSetpoint(t *testing.T) {
	ch := defaultChamber(t)

	if step := ChamberStep(18, 18, 12, ch); step.CoolingKJ != 0 {
		t.Errorf("cooling at setpoint = %f kJ, want 0", step.CoolingKJ)
	}
	if step := ChamberStep(19, 18, 12, ch); step.CoolingKJ <= 0 {
		t.Errorf("cooling above setpoint = %f kJ, want > 0", step.CoolingKJ)
	}
}

func TestChamberStep_CoolingBoundedByCapacity(t *testing.T) {
	ch := defaultChamber(t)

	// A huge excursion should be capped at the daily capacity
	step := ChamberStep(80, 18, 12, ch)
	if step.CoolingKJ != ch.CoolingKJPerDay {
		t.Errorf("cooling = %f kJ, want capacity cap %f", step.CoolingKJ, ch.CoolingKJPerDay)
	}
}

func TestChamberStep_CoolingNeverOvershootsSetpoint(t *testing.T) {
	ch := defaultChamber(t)
	ch.LEDPowerW = 0
	ch.OtherPowerW = 0
	ch.LossKJPerDayPerK = 0

	// With no other fluxes, cooling alone brings the chamber exactly to
	// the setpoint, never past it
	step := ChamberStep(20, 18, 0, ch)
	if math.Abs(step.NextTempC-18) > 1e-9 {
		t.Errorf("cooled to %f, want exactly 18", step.NextTempC)
	}
}

func TestChamberStep_EnergyDrawIncludesCooling(t *testing.T) {
	ch := defaultChamber(t)

	noCool := ChamberStep(18, 18, 12, ch)
	cooled := ChamberStep(30, 18, 12, ch)

	if cooled.EnergyKWh <= noCool.EnergyKWh {
		t.Errorf("cooling should add electrical draw: %f vs %f kWh", cooled.EnergyKWh, noCool.EnergyKWh)
	}

	wantCooling := cooled.CoolingKJ / 3600 / ch.CoolingCOP
	if math.Abs((cooled.EnergyKWh-noCool.EnergyKWh)-wantCooling) > 1e-9 {
		t.Errorf("cooling draw = %f kWh, want %f", cooled.EnergyKWh-noCool.EnergyKWh, wantCooling)
	}
}

func TestChamberStep_EnergyDrawNonNegative(t *testing.T) {
	ch := defaultChamber(t)

	for _, pp := range []float64{0, 8, 16, 24} {
		for temp := 0.0; temp <= 50; temp += 5 {
			if step := ChamberStep(temp, 18, pp, ch); step.EnergyKWh < 0 {
				t.Fatalf("negative energy draw at T=%.0f pp=%.0f: %f", temp, pp, step.EnergyKWh)
			}
		}
	}
}

func TestThermalTimeDelta_AboveBaseOnly(t *testing.T) {
	if d := ThermalTimeDelta(18, 7); math.Abs(d-11) > 1e-12 {
		t.Errorf("ThermalTimeDelta(18, 7) = %f, want 11", d)
	}
	if d := ThermalTimeDelta(5, 7); d != 0 {
		t.Errorf("ThermalTimeDelta(5, 7) = %f, want 0", d)
	}
	if d := ThermalTimeDelta(7, 7); d != 0 {
		t.Errorf("ThermalTimeDelta at base = %f, want 0", d)
	}
}
