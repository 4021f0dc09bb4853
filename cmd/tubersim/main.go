// Command tubersim runs the potato chamber twin headless: one deterministic
// simulation over the configured horizon, with CSV trace output and a
// structured run summary.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/verdantlab/tubersim/config"
	"github.com/verdantlab/tubersim/sim"
	"github.com/verdantlab/tubersim/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV trace and config snapshot")
	days := flag.Int("days", 0, "Simulation horizon in days (0 = use config)")
	logTrace := flag.Bool("log-trace", false, "Log every simulated day via slog")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	if *days > 0 {
		cfg.Scenario.Days = *days
	}

	loop, err := sim.New(cfg, nil)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	om, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to initialize output", "error", err)
		os.Exit(1)
	}
	defer om.Close()

	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	slog.Info("starting simulation",
		"days", cfg.Scenario.Days,
		"ppfd", cfg.Scenario.PPFD,
		"photoperiod_h", cfg.Scenario.PhotoperiodH,
		"co2_ppm", cfg.Scenario.CO2PPM,
		"target_temp_c", cfg.Scenario.TargetTempC,
	)

	states, err := loop.Run()
	trace := telemetry.Trace(states, &cfg.Growth)

	if *logTrace || cfg.Telemetry.LogTrace {
		for _, rec := range trace {
			slog.Info("day",
				"day", rec.Day,
				"thermal_time", rec.ThermalTime,
				"tuber_fresh_g", rec.TuberFreshG,
				"lai", rec.LAI,
				"chamber_temp_c", rec.ChamberTempC,
				"cum_energy_kwh", rec.EnergyKWh,
			)
		}
	}

	if werr := om.WriteTrace(trace); werr != nil {
		slog.Error("failed to write trace", "error", werr)
		os.Exit(1)
	}

	if err != nil {
		// The trace up to the failed day has already been written.
		slog.Error("run halted", "error", err)
		os.Exit(1)
	}

	slog.Info("run complete", "summary", telemetry.Summarize(trace))
}
