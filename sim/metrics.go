// Aggregates per-station accounting into the final run report.

package sim

import "fmt"

// Report is the read-only end-of-run summary. Safe to build only after every
// driver goroutine has joined, when no concurrent mutation remains.
type Report struct {
	PerStation []StationSnapshot

	TotalServedStandard    int
	TotalServedPriority    int
	TotalVisits            int
	TotalStandardRevenue   float64
	TotalPriorityRevenue   float64
	TotalIncidentalRevenue float64
	GrandTotalRevenue      float64

	MostVisited string // station with the highest visit count, roster-order tie break
}

// BuildReport snapshots every station and sums the totals.
func BuildReport(stations []*Station) *Report {
	r := &Report{PerStation: make([]StationSnapshot, 0, len(stations))}
	maxVisits := -1
	for _, s := range stations {
		snap := s.Snapshot()
		r.PerStation = append(r.PerStation, snap)
		r.TotalServedStandard += snap.ServedStandard
		r.TotalServedPriority += snap.ServedPriority
		r.TotalVisits += snap.VisitCount
		r.TotalStandardRevenue += snap.StandardRevenue
		r.TotalPriorityRevenue += snap.PriorityRevenue
		r.TotalIncidentalRevenue += snap.IncidentalRevenue
		// Strict > keeps the first roster entry on ties.
		if snap.VisitCount > maxVisits {
			maxVisits = snap.VisitCount
			r.MostVisited = snap.ID
		}
	}
	r.GrandTotalRevenue = r.TotalStandardRevenue + r.TotalPriorityRevenue + r.TotalIncidentalRevenue
	return r
}

// Print displays the aggregated report at the end of the simulation.
func (r *Report) Print() {
	fmt.Println("=== Simulation Report ===")
	for _, snap := range r.PerStation {
		status := ""
		if snap.Closed {
			status = " [closed]"
		}
		fmt.Printf("%-16s visits=%-4d standard=%-4d priority=%-4d revenue=$%.2f%s\n",
			snap.ID, snap.VisitCount, snap.ServedStandard, snap.ServedPriority, snap.Revenue(), status)
	}
	fmt.Printf("Total standard visitors served : %d\n", r.TotalServedStandard)
	fmt.Printf("Total priority visitors served : %d\n", r.TotalServedPriority)
	fmt.Printf("Total standard revenue         : $%.2f\n", r.TotalStandardRevenue)
	fmt.Printf("Total priority revenue         : $%.2f\n", r.TotalPriorityRevenue)
	fmt.Printf("Total incidental revenue       : $%.2f\n", r.TotalIncidentalRevenue)
	fmt.Printf("Grand total revenue            : $%.2f\n", r.GrandTotalRevenue)
	fmt.Printf("Most visited station           : %s\n", r.MostVisited)
}
