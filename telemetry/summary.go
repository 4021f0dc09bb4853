package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// RunSummary holds headline figures for one completed run.
type RunSummary struct {
	Days          int     `json:"days"`
	TuberFreshG   float64 `json:"tuber_fresh_g"`
	FreshTotalG   float64 `json:"fresh_total_g"`
	FinalLAI      float64 `json:"final_lai"`
	ThermalTime   float64 `json:"thermal_time"`
	EnergyKWh     float64 `json:"energy_kwh"`
	KWhPerTuberG  float64 `json:"kwh_per_tuber_g"` // 0 when no tuber mass formed
	TempMeanC     float64 `json:"temp_mean_c"`
	TempStdC      float64 `json:"temp_std_c"`
}

// Summarize computes the run summary from a full trace. An empty trace
// yields a zero summary.
func Summarize(trace []DayRecord) RunSummary {
	if len(trace) == 0 {
		return RunSummary{}
	}

	temps := make([]float64, len(trace))
	for i, rec := range trace {
		temps[i] = rec.ChamberTempC
	}

	final := trace[len(trace)-1]
	s := RunSummary{
		Days:        final.Day,
		TuberFreshG: final.TuberFreshG,
		FreshTotalG: final.FreshTotalG,
		FinalLAI:    final.LAI,
		ThermalTime: final.ThermalTime,
		EnergyKWh:   final.EnergyKWh,
		TempMeanC:   stat.Mean(temps, nil),
		TempStdC:    stat.StdDev(temps, nil),
	}
	if final.TuberFreshG > 0 {
		s.KWhPerTuberG = final.EnergyKWh / final.TuberFreshG
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s RunSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("days", s.Days),
		slog.Float64("tuber_fresh_g", s.TuberFreshG),
		slog.Float64("fresh_total_g", s.FreshTotalG),
		slog.Float64("final_lai", s.FinalLAI),
		slog.Float64("thermal_time", s.ThermalTime),
		slog.Float64("energy_kwh", s.EnergyKWh),
		slog.Float64("kwh_per_tuber_g", s.KWhPerTuberG),
		slog.Float64("temp_mean_c", s.TempMeanC),
		slog.Float64("temp_std_c", s.TempStdC),
	)
}
