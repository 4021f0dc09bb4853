package telemetry

import (
	"math"
	"testing"
)

func TestSummarize_EmptyTrace(t *testing.T) {
	if s := Summarize(nil); s != (RunSummary{}) {
		t.Errorf("empty trace summary = %+v, want zero value", s)
	}
}

func TestSummarize_FinalValuesAndTemperatureStats(t *testing.T) {
	trace := []DayRecord{
		{Day: 0, ChamberTempC: 18},
		{Day: 1, ChamberTempC: 20, TuberFreshG: 10, FreshTotalG: 50, EnergyKWh: 5},
		{Day: 2, ChamberTempC: 22, TuberFreshG: 30, FreshTotalG: 120, EnergyKWh: 10, ThermalTime: 26},
	}

	s := Summarize(trace)

	if s.Days != 2 {
		t.Errorf("days = %d, want 2", s.Days)
	}
	if s.TuberFreshG != 30 || s.FreshTotalG != 120 || s.EnergyKWh != 10 {
		t.Errorf("final values wrong: %+v", s)
	}
	if math.Abs(s.TempMeanC-20) > 1e-9 {
		t.Errorf("mean temp = %f, want 20", s.TempMeanC)
	}
	if math.Abs(s.KWhPerTuberG-10.0/30.0) > 1e-12 {
		t.Errorf("kWh per tuber g = %f, want %f", s.KWhPerTuberG, 10.0/30.0)
	}
	if s.TempStdC <= 0 {
		t.Errorf("temp stddev = %f, want > 0", s.TempStdC)
	}
}

func TestSummarize_NoYieldMeansNoIntensity(t *testing.T) {
	trace := []DayRecord{{Day: 1, EnergyKWh: 8}}
	if s := Summarize(trace); s.KWhPerTuberG != 0 {
		t.Errorf("kWh per tuber g with zero yield = %f, want 0", s.KWhPerTuberG)
	}
}
