package sim

import (
	"fmt"
	"time"
)

// StationConfig groups the construction-time parameters of one station.
// The original park modeled attraction kinds as subclasses; here they are
// plain configuration values (see presets.go for the named ones).
type StationConfig struct {
	ID             string  `yaml:"id"`
	Capacity       int     `yaml:"capacity"`        // max visitors concurrently inside (must be > 0)
	ServiceSeconds float64 `yaml:"service_seconds"` // simulated seconds a visitor occupies a slot
	StandardFee    float64 `yaml:"standard_fee"`
	PriorityFee    float64 `yaml:"priority_fee"`
	RunLimit       int     `yaml:"run_limit"`    // 0 = unlimited; > 0 closes after that many services
	BudgetSales    bool    `yaml:"budget_sales"` // charge each visitor's budget as incidental revenue
	ItemFee        float64 `yaml:"item_fee"`     // flat incidental charge per served visitor
}

// Validate checks the parameter ranges. Any failure is fatal at construction,
// before the first goroutine starts.
func (c StationConfig) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("station id must not be empty")
	}
	if c.Capacity <= 0 {
		return fmt.Errorf("station %s: capacity must be positive, got %d", c.ID, c.Capacity)
	}
	if c.ServiceSeconds < 0 {
		return fmt.Errorf("station %s: service_seconds must be non-negative, got %f", c.ID, c.ServiceSeconds)
	}
	if c.StandardFee < 0 {
		return fmt.Errorf("station %s: standard_fee must be non-negative, got %f", c.ID, c.StandardFee)
	}
	if c.PriorityFee < 0 {
		return fmt.Errorf("station %s: priority_fee must be non-negative, got %f", c.ID, c.PriorityFee)
	}
	if c.RunLimit < 0 {
		return fmt.Errorf("station %s: run_limit must be non-negative, got %d", c.ID, c.RunLimit)
	}
	if c.ItemFee < 0 {
		return fmt.Errorf("station %s: item_fee must be non-negative, got %f", c.ID, c.ItemFee)
	}
	return nil
}

// Traversal selects how a driver walks the roster.
type Traversal string

const (
	TraversalFixed  Traversal = "fixed"  // walk the roster in order, one pass
	TraversalRandom Traversal = "random" // uniform re-draw each step, revisits allowed
)

// Admission selects how a driver engages a station.
type Admission string

const (
	AdmissionDirect Admission = "direct" // race AttemptVisit, immediate rejection when full
	AdmissionQueued Admission = "queued" // enqueue into the class queue, caller drains
)

// ValidTraversalPolicies is the set of recognized traversal policy names.
// Shared by Validate() and the CLI to avoid duplication.
var ValidTraversalPolicies = map[Traversal]bool{"": true, TraversalFixed: true, TraversalRandom: true}

// ValidAdmissionModes is the set of recognized admission mode names.
var ValidAdmissionModes = map[Admission]bool{"": true, AdmissionDirect: true, AdmissionQueued: true}

// RunConfig groups the run-level parameters.
type RunConfig struct {
	Visitors                int           // number of visitors generated for the run
	Workers                 int           // worker pool size (tasks run concurrently up to this)
	ContinuationProbability float64       // chance a serviced visitor repeats the same station
	StopProbability         float64       // chance a random traversal ends after a step
	PriorityProbability     float64       // chance a generated visitor is ClassPriority
	BudgetMin               int           // inclusive budget lower bound
	BudgetMax               int           // inclusive budget upper bound
	Traversal               Traversal     // empty defaults to fixed
	Admission               Admission     // empty defaults to queued
	TimeScale               time.Duration // wall-clock length of one simulated second
	Seed                    int64         // master seed for the partitioned RNG
}

// Validate checks the run-level parameter ranges and policy names.
func (c RunConfig) Validate() error {
	if c.Visitors <= 0 {
		return fmt.Errorf("visitors must be positive, got %d", c.Visitors)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	for name, p := range map[string]float64{
		"continuation probability": c.ContinuationProbability,
		"stop probability":         c.StopProbability,
		"priority probability":     c.PriorityProbability,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s must be in [0,1], got %f", name, p)
		}
	}
	if c.BudgetMin < 0 {
		return fmt.Errorf("budget minimum must be non-negative, got %d", c.BudgetMin)
	}
	if c.BudgetMax < c.BudgetMin {
		return fmt.Errorf("budget maximum %d is below budget minimum %d", c.BudgetMax, c.BudgetMin)
	}
	if !ValidTraversalPolicies[c.Traversal] {
		return fmt.Errorf("unknown traversal policy %q", c.Traversal)
	}
	if !ValidAdmissionModes[c.Admission] {
		return fmt.Errorf("unknown admission mode %q", c.Admission)
	}
	if c.TimeScale < 0 {
		return fmt.Errorf("time scale must be non-negative, got %s", c.TimeScale)
	}
	return nil
}
