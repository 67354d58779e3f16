// Package sim provides the concurrent admission-control engine for parkgate.
//
// # Reading Guide
//
// Start with these three files to understand the core:
//   - visitor.go: the Visitor data model and roster generation
//   - station.go: admission, two-class queue draining, accounting, lifetime
//   - driver.go: one visitor's traversal over the station chain
//
// # Architecture
//
// A run is a fixed roster of Stations shared by reference across driver
// goroutines. Each station owns its lock, queues, and counters; no station
// touches another's state, and no lock is held across a service delay. The
// Executor fans visitors out over a bounded worker pool and joins every
// driver before the Report aggregator reads the counters.
//
// # Key Interfaces
//
//   - EventSink: consumes state-transition events (entered, left, full, closed)
//   - Traversal / Admission: policy names selecting chain walk and gate mode
package sim
