package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/verdantlab/tubersim/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir       string
	traceFile *os.File

	// Track if the header has been written
	traceHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	tracePath := filepath.Join(dir, "trace.csv")
	f, err := os.Create(tracePath)
	if err != nil {
		return nil, fmt.Errorf("creating trace.csv: %w", err)
	}
	om.traceFile = f

	return om, nil
}

// WriteConfig saves the run's configuration as YAML alongside the trace.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteDay appends one day's record to trace.csv.
func (om *OutputManager) WriteDay(rec DayRecord) error {
	if om == nil {
		return nil
	}

	records := []DayRecord{rec}

	if !om.traceHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.traceFile); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		om.traceHeaderWritten = true
	} else {
		// Subsequent writes skip headers
		if err := gocsv.MarshalWithoutHeaders(records, om.traceFile); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
	}

	return nil
}

// WriteTrace appends a full run's records to trace.csv.
func (om *OutputManager) WriteTrace(records []DayRecord) error {
	if om == nil {
		return nil
	}
	for _, rec := range records {
		if err := om.WriteDay(rec); err != nil {
			return err
		}
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes the trace file.
func (om *OutputManager) Close() error {
	if om == nil || om.traceFile == nil {
		return nil
	}
	return om.traceFile.Close()
}
