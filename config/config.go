// Package config provides configuration loading and access for the twin.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all model and scenario configuration parameters.
type Config struct {
	Growth    GrowthConfig    `yaml:"growth"`
	Chamber   ChamberConfig   `yaml:"chamber"`
	Scenario  ScenarioConfig  `yaml:"scenario"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// GrowthConfig holds the biological constants controlling crop growth.
type GrowthConfig struct {
	LUE          float64 `yaml:"lue_g_per_mj"`       // Dry g biomass per MJ absorbed PAR
	SLA          float64 `yaml:"sla_m2_per_g"`       // Leaf area per gram of leaf dry mass
	KExtinction  float64 `yaml:"k_extinction"`       // Canopy light extinction coefficient
	DryToFresh   float64 `yaml:"dry_to_fresh_ratio"` // Dry matter fraction of whole-plant fresh mass
	TuberDryFrac float64 `yaml:"tuber_dry_matter"`   // Dry matter fraction of tuber fresh mass

	// Cardinal temperatures (°C) for the temperature modifier and thermal time
	BaseTempC float64 `yaml:"base_temp_c"` // Below this, no growth and no thermal time
	OptTempC  float64 `yaml:"opt_temp_c"`
	MaxTempC  float64 `yaml:"max_temp_c"` // Above this, no growth

	// CO₂ response (ppm)
	CO2CompPPM float64 `yaml:"co2_comp_ppm"` // Compensation point; at or below, no assimilation
	CO2RefPPM  float64 `yaml:"co2_ref_ppm"`
	CO2SatPPM  float64 `yaml:"co2_sat_ppm"`

	// Phenology thresholds (°C·day)
	TTEmergence float64 `yaml:"tt_emergence"`
	TTTuberInit float64 `yaml:"tt_tuber_init"`
	TTMaturity  float64 `yaml:"tt_maturity"`

	// Maintenance respiration
	MaintFracPerDay float64 `yaml:"maint_frac_per_day"` // Fraction of total biomass respired daily at reference temp
	MaintQ10        float64 `yaml:"maint_q10"`          // Respiration multiplier per +10°C
	MaintRefTempC   float64 `yaml:"maint_ref_temp_c"`   // Reference temperature for the Q10 term

	// Partitioning
	LeafBiasEarly   float64 `yaml:"leaf_bias_early"`  // Leaf share of leaf+stem before tuber initiation
	LeafBiasLate    float64 `yaml:"leaf_bias_late"`   // Leaf share of leaf+stem after tuber initiation
	TuberFracBase   float64 `yaml:"tuber_frac_base"`  // Tuber fraction at the moment of initiation
	TuberFracMax    float64 `yaml:"tuber_frac_max"`   // Ceiling of the tuber fraction ramp
	PhotoperiodGain float64 `yaml:"photoperiod_gain"` // Short-day tuberization boost weight
}

// ChamberConfig holds the physical constants of the growth chamber.
type ChamberConfig struct {
	HeatCapacityKJPerK float64 `yaml:"heat_capacity_kj_per_k"` // Total chamber thermal mass
	LossKJPerDayPerK   float64 `yaml:"loss_kj_per_day_per_k"`  // Heat loss per K above ambient
	LEDPowerW          float64 `yaml:"led_power_w"`
	OtherPowerW        float64 `yaml:"other_power_w"`      // Fans, pumps, controllers (run 24 h)
	CoolingKJPerDay    float64 `yaml:"cooling_kj_per_day"` // Maximum cooling capacity
	CoolingCOP         float64 `yaml:"cooling_cop"`        // Heat removed per unit electrical input
	AmbientTempC       float64 `yaml:"ambient_temp_c"`     // Room temperature outside the chamber
}

// ScenarioConfig defines initial and environmental conditions for a run.
// PPFD, photoperiod, CO₂, and setpoint form the constant environment; a host
// may supply a day-indexed schedule instead (see sim.Schedule).
type ScenarioConfig struct {
	Days            int     `yaml:"days"`
	PPFD            float64 `yaml:"ppfd_umol_m2_s"`
	PhotoperiodH    float64 `yaml:"photoperiod_h"`
	CO2PPM          float64 `yaml:"co2_ppm"`
	TargetTempC     float64 `yaml:"target_temp_c"` // Chamber temperature setpoint
	InitialLeafDryG float64 `yaml:"initial_leaf_dry_g"`
	GroundAreaM2    float64 `yaml:"ground_area_m2"`
}

// TelemetryConfig holds trace output parameters.
type TelemetryConfig struct {
	LogTrace bool `yaml:"log_trace"` // Emit one slog record per simulated day
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
