package sim

// Outcome is the result of one visit attempt at a station.
// Outcomes are returned values, never errors: a full or closed station is an
// expected condition the caller must interpret, not a fault.
type Outcome string

const (
	// OutcomeServiced means the visitor was admitted, occupied a slot for the
	// service duration, and was released with accounting updated.
	OutcomeServiced Outcome = "serviced"

	// OutcomeFull means the station was at capacity and the visitor was
	// rejected immediately, with no state change. The caller decides the next
	// policy step (advance, retry, abandon).
	OutcomeFull Outcome = "full"

	// OutcomeClosed means the station has permanently reached its run limit.
	// It is the terminal signal for a traversal: returned to new arrivals, to
	// visitors already queued, and to the visitor whose completed service
	// reached the limit.
	OutcomeClosed Outcome = "closed"
)
