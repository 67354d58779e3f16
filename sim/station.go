// Implements the Station, the admission-controlled heart of the simulation.
//
// A Station is a finite-capacity resource shared by reference across every
// driver goroutine. All cross-goroutine state (occupancy, the two class
// queues, and the accounting counters) is mutated only inside the station's
// exclusive section. The lock is never held across the simulated service
// delay, so admitted visitors proceed concurrently up to capacity.

package sim

import (
	"sync"
	"time"
)

// Station is a capacity-limited service point with two-class admission.
type Station struct {
	id          string
	capacity    int
	serviceTime time.Duration
	standardFee float64
	priorityFee float64
	runLimit    int // 0 = unlimited lifetime
	budgetSales bool
	itemFee     float64
	sink        EventSink

	mu               sync.Mutex
	occupancy        int
	closed           bool
	runCount         int
	waitingStandard   waitQueue
	waitingPriority   waitQueue
	servedStandard    int
	servedPriority    int
	visitCount        int
	standardRevenue   float64
	priorityRevenue   float64
	incidentalRevenue float64
}

// NewStation builds a station from a validated configuration.
// Returns ConfigurationInvalid-class errors before any goroutine can touch
// the station.
func NewStation(cfg StationConfig, sink EventSink, scale time.Duration) (*Station, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		sink = NopSink{}
	}
	return &Station{
		id:          cfg.ID,
		capacity:    cfg.Capacity,
		serviceTime: time.Duration(cfg.ServiceSeconds * float64(scale)),
		standardFee: cfg.StandardFee,
		priorityFee: cfg.PriorityFee,
		runLimit:    cfg.RunLimit,
		budgetSales: cfg.BudgetSales,
		itemFee:     cfg.ItemFee,
		sink:        sink,
	}, nil
}

// ID returns the station's identifier.
func (s *Station) ID() string { return s.id }

// Capacity returns the station's fixed concurrency bound.
func (s *Station) Capacity() int { return s.capacity }

// Occupancy returns the number of visitors currently inside the station.
func (s *Station) Occupancy() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.occupancy
}

// Closed reports whether the station has permanently reached its run limit.
func (s *Station) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// AttemptVisit races for a slot directly: closed-check and capacity
// check-then-increment form one indivisible operation, so no two callers can
// both observe the last free slot. Rejection is immediate; the station never
// blocks a rejected caller.
func (s *Station) AttemptVisit(v *Visitor) Outcome {
	s.mu.Lock()
	if s.closed || s.exhaustedLocked() {
		s.mu.Unlock()
		return OutcomeClosed
	}
	if s.occupancy == s.capacity {
		s.sink.Record(Event{Type: EventStationFull, StationID: s.id, VisitorID: v.ID, Timestamp: time.Now()})
		s.mu.Unlock()
		return OutcomeFull
	}
	s.occupancy++
	s.sink.Record(Event{Type: EventVisitorEntered, StationID: s.id, VisitorID: v.ID, Timestamp: time.Now()})
	s.mu.Unlock()
	return s.serve(v)
}

// Enqueue places a visitor on the waiting queue matching its class.
// Returns false if the station is already closed: queued admission is refused
// up front rather than leaving the visitor stranded.
func (s *Station) Enqueue(v *Visitor) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	if v.Class == ClassPriority {
		s.waitingPriority.Enqueue(v)
	} else {
		s.waitingStandard.Enqueue(v)
	}
	return true
}

// QueueVisit is the two-class admission contract: the visitor enqueues itself
// and the calling goroutine becomes responsible for draining whatever is
// currently queued.
func (s *Station) QueueVisit(v *Visitor) Outcome {
	if !s.Enqueue(v) {
		return OutcomeClosed
	}
	return s.Drain()
}

// Drain services waiting visitors until the queues are empty, the station
// closes, or capacity is exhausted. The priority queue drains fully before any
// standard visitor is considered; a continuous priority stream therefore
// starves standard visitors. That is the documented privileged-class policy,
// not round-robin fairness.
//
// Many goroutines may drain the same station concurrently. Dequeue happens
// under the exclusive section, so no visitor is serviced twice or lost; a
// drainer that finds the queues empty on re-check simply returns.
//
// Returning OutcomeFull is safe: capacity full means another drainer is
// mid-service and will resume draining after its release.
func (s *Station) Drain() Outcome {
	for {
		s.mu.Lock()
		if s.closed || s.exhaustedLocked() {
			s.mu.Unlock()
			return OutcomeClosed
		}
		next := s.waitingPriority.Dequeue()
		fromPriority := next != nil
		if next == nil {
			next = s.waitingStandard.Dequeue()
		}
		if next == nil {
			s.mu.Unlock()
			return OutcomeServiced
		}
		if s.occupancy == s.capacity {
			// Put the visitor back at the head of its class queue so FIFO
			// order survives the failed admission.
			if fromPriority {
				s.waitingPriority.RequeueFront(next)
			} else {
				s.waitingStandard.RequeueFront(next)
			}
			s.sink.Record(Event{Type: EventStationFull, StationID: s.id, VisitorID: next.ID, Timestamp: time.Now()})
			s.mu.Unlock()
			return OutcomeFull
		}
		s.occupancy++
		s.sink.Record(Event{Type: EventVisitorEntered, StationID: s.id, VisitorID: next.ID, Timestamp: time.Now()})
		s.mu.Unlock()

		if out := s.serve(next); out == OutcomeClosed {
			return OutcomeClosed
		}
	}
}

// exhaustedLocked reports whether the services already completed plus those in
// flight account for the whole run limit. Admission must stop here, not at
// closure: otherwise visitors admitted alongside the limit-reaching service
// would push completions past the limit.
func (s *Station) exhaustedLocked() bool {
	return s.runLimit > 0 && s.runCount+s.occupancy >= s.runLimit
}

// serve simulates the service delay with no lock held, then releases the
// slot: occupancy decrement and all accounting updates happen in one
// exclusive section, so the counters are never observable mid-update.
func (s *Station) serve(v *Visitor) Outcome {
	start := time.Now()
	if s.serviceTime > 0 {
		time.Sleep(s.serviceTime)
	}

	s.mu.Lock()
	s.occupancy--
	s.visitCount++
	switch v.Class {
	case ClassPriority:
		s.servedPriority++
		s.priorityRevenue += s.priorityFee
	default:
		s.servedStandard++
		s.standardRevenue += s.standardFee
	}
	if s.budgetSales {
		s.incidentalRevenue += float64(v.Budget)
	}
	s.incidentalRevenue += s.itemFee

	closedNow := false
	if s.runLimit > 0 {
		s.runCount++
		if s.runCount >= s.runLimit && !s.closed {
			s.closed = true
			closedNow = true
		}
	}
	s.sink.Record(Event{
		Type:      EventVisitorLeft,
		StationID: s.id,
		VisitorID: v.ID,
		Timestamp: time.Now(),
		Elapsed:   time.Since(start),
	})
	if closedNow {
		s.sink.Record(Event{Type: EventStationClosed, StationID: s.id, Timestamp: time.Now()})
	}
	s.mu.Unlock()

	// The completion that reaches the run limit carries the terminal signal;
	// the visitor was still served and counted.
	if closedNow {
		return OutcomeClosed
	}
	return OutcomeServiced
}

// StationSnapshot is a read-only copy of a station's accounting fields.
type StationSnapshot struct {
	ID                string
	Capacity          int
	ServedStandard    int
	ServedPriority    int
	VisitCount        int
	RunCount          int
	Closed            bool
	StandardFee       float64
	PriorityFee       float64
	StandardRevenue   float64
	PriorityRevenue   float64
	IncidentalRevenue float64
}

// Revenue returns the snapshot's total takings.
func (ss StationSnapshot) Revenue() float64 {
	return ss.StandardRevenue + ss.PriorityRevenue + ss.IncidentalRevenue
}

// Snapshot copies the accounting fields under the lock. Totals are stable
// only after every driver goroutine has joined.
func (s *Station) Snapshot() StationSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StationSnapshot{
		ID:                s.id,
		Capacity:          s.capacity,
		ServedStandard:    s.servedStandard,
		ServedPriority:    s.servedPriority,
		VisitCount:        s.visitCount,
		RunCount:          s.runCount,
		Closed:            s.closed,
		StandardFee:       s.standardFee,
		PriorityFee:       s.priorityFee,
		StandardRevenue:   s.standardRevenue,
		PriorityRevenue:   s.priorityRevenue,
		IncidentalRevenue: s.incidentalRevenue,
	}
}
