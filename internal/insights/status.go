package insights

import (
	"sort"

	"github.com/orderlens/backend/pkg/enums"
)

// StatusCount is one order status with its row count.
type StatusCount struct {
	Status enums.OrderStatus `json:"status"`
	Count  int               `json:"count"`
}

// StatusBreakdown holds the per-status counts sorted descending and the mode
// status. Mode is nil for an empty filtered table.
type StatusBreakdown struct {
	Counts []StatusCount      `json:"counts"`
	Mode   *enums.OrderStatus `json:"mode,omitempty"`
}

// OrderStatuses counts rows per order_status. This intentionally counts rows
// rather than distinct orders, preserving the source semantics: it only
// approximates order counts while the join duplicates a status uniformly
// across an order's item rows, so multi-item orders weigh proportionally
// more. Mode ties resolve to the lexicographically smallest status.
func OrderStatuses(t *Table) StatusBreakdown {
	counts := map[enums.OrderStatus]int{}
	for _, r := range tableRecords(t) {
		counts[r.Status]++
	}

	out := make([]StatusCount, 0, len(counts))
	for status, count := range counts {
		out = append(out, StatusCount{Status: status, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Status < out[j].Status
	})

	breakdown := StatusBreakdown{Counts: out}
	if len(out) > 0 {
		mode := out[0].Status
		breakdown.Mode = &mode
	}
	return breakdown
}
