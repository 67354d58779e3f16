// The Driver walks one visitor through the chain, interpreting each station
// outcome until the traversal terminates.

package sim

import "math/rand"

// Driver runs single-visitor traversals. Each worker goroutine owns one
// Driver with its own isolated RNG; the chain itself is shared and read-only.
type Driver struct {
	chain        *Chain
	rng          *rand.Rand
	continuation float64
	stop         float64
	traversal    Traversal
	admission    Admission
}

// NewDriver builds a driver from a validated run configuration.
func NewDriver(chain *Chain, cfg RunConfig, rng *rand.Rand) *Driver {
	return &Driver{
		chain:        chain,
		rng:          rng,
		continuation: cfg.ContinuationProbability,
		stop:         cfg.StopProbability,
		traversal:    cfg.Traversal,
		admission:    cfg.Admission,
	}
}

// Run traverses the chain for one visitor until the chain is exhausted, a
// station signals closed, or (random traversal) the stop draw succeeds.
func (d *Driver) Run(v *Visitor) {
	if d.traversal == TraversalRandom {
		d.runRandom(v)
		return
	}
	d.runFixed(v)
}

// visit engages one station under the configured admission mode.
func (d *Driver) visit(s *Station, v *Visitor) Outcome {
	if d.admission == AdmissionDirect {
		return s.AttemptVisit(v)
	}
	return s.QueueVisit(v)
}

// runFixed walks the roster start to end. A full station is abandoned and the
// walk advances to the next one; a closed station ends the traversal.
func (d *Driver) runFixed(v *Visitor) {
	for i := 0; i < d.chain.Len(); i++ {
		station := d.chain.At(i)
	linger:
		for {
			switch d.visit(station, v) {
			case OutcomeClosed:
				return
			case OutcomeFull:
				break linger
			case OutcomeServiced:
				if d.rng.Float64() < d.continuation {
					continue // linger at the same station
				}
				break linger
			}
		}
	}
}

// runRandom re-draws a station uniformly each step. After every step that
// does not linger (a completed service or a full rejection) an independent
// stop draw may end the traversal.
func (d *Driver) runRandom(v *Visitor) {
	station := d.chain.Pick(d.rng)
	for {
		switch d.visit(station, v) {
		case OutcomeClosed:
			return
		case OutcomeServiced:
			if d.rng.Float64() < d.continuation {
				continue
			}
		case OutcomeFull:
		}
		if d.rng.Float64() < d.stop {
			return
		}
		station = d.chain.Pick(d.rng)
	}
}
