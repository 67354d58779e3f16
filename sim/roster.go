package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RosterFile is a YAML station roster. Each entry names a preset, a full
// inline station configuration, or a preset plus overrides: inline fields set
// to non-zero values replace the preset's.
type RosterFile struct {
	Stations []RosterEntry `yaml:"stations"`
}

// RosterEntry is one station in a roster file.
type RosterEntry struct {
	Preset string        `yaml:"preset"`
	Config StationConfig `yaml:",inline"`
}

// LoadRosterFile reads and parses a YAML roster file.
func LoadRosterFile(path string) (*RosterFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading roster file: %w", err)
	}
	var roster RosterFile
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("parsing roster file: %w", err)
	}
	return &roster, nil
}

// Configs resolves every entry to a validated StationConfig, in file order.
func (r *RosterFile) Configs() ([]StationConfig, error) {
	if len(r.Stations) == 0 {
		return nil, fmt.Errorf("roster file defines no stations")
	}
	configs := make([]StationConfig, 0, len(r.Stations))
	for i, entry := range r.Stations {
		cfg := entry.Config
		if entry.Preset != "" {
			base, err := PresetConfig(entry.Preset)
			if err != nil {
				return nil, fmt.Errorf("roster entry %d: %w", i, err)
			}
			cfg = overlay(base, entry.Config)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("roster entry %d: %w", i, err)
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

// overlay applies non-zero override fields on top of a preset base.
func overlay(base, override StationConfig) StationConfig {
	out := base
	if override.ID != "" {
		out.ID = override.ID
	}
	if override.Capacity != 0 {
		out.Capacity = override.Capacity
	}
	if override.ServiceSeconds != 0 {
		out.ServiceSeconds = override.ServiceSeconds
	}
	if override.StandardFee != 0 {
		out.StandardFee = override.StandardFee
	}
	if override.PriorityFee != 0 {
		out.PriorityFee = override.PriorityFee
	}
	if override.RunLimit != 0 {
		out.RunLimit = override.RunLimit
	}
	if override.BudgetSales {
		out.BudgetSales = true
	}
	if override.ItemFee != 0 {
		out.ItemFee = override.ItemFee
	}
	return out
}
