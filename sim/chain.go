// The Chain owns the ordered station roster and the successor relation over
// it. Traversal is an explicit index walk or a uniform pick; stations never
// reference each other directly.

package sim

import (
	"fmt"
	"math/rand"
	"time"
)

// Chain is the ordered roster of stations a visitor can traverse.
// It is built once before the run and read-only during traversal.
type Chain struct {
	stations []*Station
}

// BuildRoster constructs the stations for a run, in roster order.
// All stations share the same event sink and time scale.
func BuildRoster(configs []StationConfig, sink EventSink, scale time.Duration) ([]*Station, error) {
	seen := make(map[string]bool, len(configs))
	stations := make([]*Station, 0, len(configs))
	for _, cfg := range configs {
		if seen[cfg.ID] {
			return nil, fmt.Errorf("duplicate station id %q in roster", cfg.ID)
		}
		seen[cfg.ID] = true
		s, err := NewStation(cfg, sink, scale)
		if err != nil {
			return nil, err
		}
		stations = append(stations, s)
	}
	return stations, nil
}

// NewChain wraps a station roster. The roster must be non-empty.
func NewChain(stations []*Station) (*Chain, error) {
	if len(stations) == 0 {
		return nil, fmt.Errorf("chain requires at least one station")
	}
	return &Chain{stations: stations}, nil
}

// Len returns the number of stations in the chain.
func (c *Chain) Len() int {
	return len(c.stations)
}

// At returns the station at roster position i.
func (c *Chain) At(i int) *Station {
	return c.stations[i]
}

// Pick returns a station drawn uniformly from the roster, independent of any
// prior pick. Revisits are allowed.
func (c *Chain) Pick(rng *rand.Rand) *Station {
	return c.stations[rng.Intn(len(c.stations))]
}

// Stations returns the roster in order, for aggregation after the run.
func (c *Chain) Stations() []*Station {
	return c.stations
}
