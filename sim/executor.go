// The Executor is the run orchestrator: it generates the visitor roster,
// fans visitors out over a bounded worker pool, joins every driver, and hands
// the stations to the report aggregator.

package sim

import (
	"math/rand"
	"sync"
)

// Executor runs one simulation: many concurrent visitor traversals over a
// shared station roster, bounded by a worker pool.
type Executor struct {
	cfg   RunConfig
	chain *Chain
	rng   *PartitionedRNG
}

// NewExecutor builds an executor for a validated run configuration.
func NewExecutor(cfg RunConfig, chain *Chain) *Executor {
	return &Executor{
		cfg:   cfg,
		chain: chain,
		rng:   NewPartitionedRNG(NewSimulationKey(cfg.Seed)),
	}
}

// GenerateVisitors draws the visitor roster from the visitors subsystem RNG.
func (e *Executor) GenerateVisitors() []*Visitor {
	source := &VisitorSource{
		PriorityProbability: e.cfg.PriorityProbability,
		BudgetMin:           e.cfg.BudgetMin,
		BudgetMax:           e.cfg.BudgetMax,
	}
	return source.Generate(e.cfg.Visitors, e.rng.ForSubsystem(SubsystemVisitors))
}

// Run drives every visitor through the chain, one task per visitor, with at
// most cfg.Workers tasks in flight. Visitors beyond the pool size wait for a
// worker. Run returns only after every driver has joined, so station counters
// are stable for aggregation.
func (e *Executor) Run(visitors []*Visitor) {
	// Worker RNG streams are derived up front: PartitionedRNG itself is not
	// safe for concurrent use.
	rngs := make([]*rand.Rand, e.cfg.Workers)
	for w := range rngs {
		rngs[w] = e.rng.ForSubsystem(SubsystemWorker(w))
	}

	tasks := make(chan *Visitor)
	var wg sync.WaitGroup
	for w := 0; w < e.cfg.Workers; w++ {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()
			driver := NewDriver(e.chain, e.cfg, rng)
			for v := range tasks {
				driver.Run(v)
			}
		}(rngs[w])
	}

	for _, v := range visitors {
		tasks <- v
	}
	close(tasks)
	wg.Wait()
}

// RunSimulation wires a whole run together: roster, chain, visitor roster,
// worker pool, and final report. The entry point used by the CLI.
func RunSimulation(cfg RunConfig, stationConfigs []StationConfig, sink EventSink) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	stations, err := BuildRoster(stationConfigs, sink, cfg.TimeScale)
	if err != nil {
		return nil, err
	}
	chain, err := NewChain(stations)
	if err != nil {
		return nil, err
	}
	executor := NewExecutor(cfg, chain)
	executor.Run(executor.GenerateVisitors())
	return BuildReport(stations), nil
}
