package sim

import "fmt"

// Presets are the named station configurations the original park shipped as
// subclasses. Fees are the park-wide 10/25 split; capacities and durations
// match the original roster.
var presets = map[string]StationConfig{
	"water-park":     {ID: "water-park", Capacity: 10, ServiceSeconds: 6, StandardFee: 10, PriorityFee: 25},
	"roller-coaster": {ID: "roller-coaster", Capacity: 3, ServiceSeconds: 3, StandardFee: 10, PriorityFee: 25},
	"shop":           {ID: "shop", Capacity: 8, ServiceSeconds: 7, StandardFee: 10, PriorityFee: 25, BudgetSales: true},
	"food-truck":     {ID: "food-truck", Capacity: 5, ServiceSeconds: 2, StandardFee: 10, PriorityFee: 25, ItemFee: 5},
	"ferris-wheel":   {ID: "ferris-wheel", Capacity: 6, ServiceSeconds: 8, StandardFee: 10, PriorityFee: 25},
	"arcade-games":   {ID: "arcade-games", Capacity: 4, ServiceSeconds: 5, StandardFee: 10, PriorityFee: 25},
	"circus-show":    {ID: "circus-show", Capacity: 15, ServiceSeconds: 10, StandardFee: 10, PriorityFee: 25, RunLimit: 30},
}

// DefaultRosterNames is the default roster in traversal order. Roster order is
// also the tie break for the most-visited report line.
var DefaultRosterNames = []string{
	"water-park", "roller-coaster", "shop", "ferris-wheel", "arcade-games", "circus-show", "food-truck",
}

// PresetConfig returns the named preset configuration.
func PresetConfig(name string) (StationConfig, error) {
	cfg, ok := presets[name]
	if !ok {
		return StationConfig{}, fmt.Errorf("unknown station preset %q", name)
	}
	return cfg, nil
}

// DefaultRosterConfigs returns the default roster's configurations in order.
func DefaultRosterConfigs() []StationConfig {
	configs := make([]StationConfig, 0, len(DefaultRosterNames))
	for _, name := range DefaultRosterNames {
		cfg, _ := PresetConfig(name)
		configs = append(configs, cfg)
	}
	return configs
}
