// Defines the Visitor struct that models an individual park guest in the simulation.
// Visitors are immutable after creation: identity, priority class, and budget
// are all assigned by the VisitorSource and never change during a traversal.

package sim

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// Class is a visitor's priority classification.
type Class string

const (
	ClassStandard Class = "standard"
	ClassPriority Class = "priority"
)

// Visitor models a single park guest.
// Each visitor has:
// - a unique identifier for the run
// - a priority class drawn once at creation
// - a discretionary budget consumed (read-only) by stations that model sales
type Visitor struct {
	ID     string // Unique identifier for the visitor
	Class  Class  // standard or priority, immutable after creation
	Budget int    // Discretionary spend, immutable after creation
}

// This method returns a human-readable string representation of a Visitor.
func (v Visitor) String() string {
	return fmt.Sprintf("Visitor: (ID: %s, Class: %s, Budget: %d)", v.ID, v.Class, v.Budget)
}

// VisitorSource generates the visitor roster for a run.
// It draws from an injected RNG so that runs with the same seed
// produce the same roster.
type VisitorSource struct {
	PriorityProbability float64 // probability a visitor is ClassPriority
	BudgetMin           int     // inclusive lower bound for Budget
	BudgetMax           int     // inclusive upper bound for Budget
}

// Generate creates n visitors. IDs are the first segment of a freshly
// generated UUID; class and budget come from rng.
func (vs *VisitorSource) Generate(n int, rng *rand.Rand) []*Visitor {
	visitors := make([]*Visitor, 0, n)
	for i := 0; i < n; i++ {
		class := ClassStandard
		if rng.Float64() < vs.PriorityProbability {
			class = ClassPriority
		}
		budget := vs.BudgetMin
		if vs.BudgetMax > vs.BudgetMin {
			budget += rng.Intn(vs.BudgetMax - vs.BudgetMin + 1)
		}
		visitors = append(visitors, &Visitor{
			ID:     shortID(),
			Class:  class,
			Budget: budget,
		})
	}
	return visitors
}

// shortID returns the first segment of a UUID, e.g. "9f2c1a7b".
func shortID() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}
