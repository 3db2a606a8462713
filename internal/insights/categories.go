package insights

import "sort"

// CategoryVolume is one product category with its sold-item count.
type CategoryVolume struct {
	Category     string `json:"category"`
	ProductCount int    `json:"product_count"`
}

// CategoryVolumes counts rows per product category. Row counting is correct
// here: each row of the source join is one sold item instance, unlike order
// counting. The full table is returned sorted descending by count, ties kept
// in first-seen input order; callers slice their own top-N and bottom-N
// views from it.
func CategoryVolumes(t *Table) []CategoryVolume {
	counts := map[string]int{}
	order := []string{}
	for _, r := range tableRecords(t) {
		if _, seen := counts[r.Category]; !seen {
			order = append(order, r.Category)
		}
		counts[r.Category]++
	}

	out := make([]CategoryVolume, 0, len(order))
	for _, category := range order {
		out = append(out, CategoryVolume{Category: category, ProductCount: counts[category]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ProductCount > out[j].ProductCount
	})
	return out
}
