package insights

import "sort"

// GeoCount is one state or city with its distinct-customer count.
type GeoCount struct {
	Location      string `json:"location"`
	CustomerCount int    `json:"customer_count"`
}

// GeoBreakdown holds the grouped table sorted descending by customer count
// and the single top location. Top is nil for an empty filtered table.
type GeoBreakdown struct {
	Groups []GeoCount `json:"groups"`
	Top    *string    `json:"top,omitempty"`
}

// CustomersByState groups the table by customer_state.
func CustomersByState(t *Table) GeoBreakdown {
	return groupCustomers(t, func(r Record) string { return r.CustomerState })
}

// CustomersByCity groups the table by customer_city.
func CustomersByCity(t *Table) GeoBreakdown {
	return groupCustomers(t, func(r Record) string { return r.CustomerCity })
}

// groupCustomers counts distinct customer_id per group; a customer appearing
// on many order rows still counts once per group. Count ties sort, and the
// top pick resolves, by lexicographically smallest location.
func groupCustomers(t *Table, key func(Record) string) GeoBreakdown {
	customers := map[string]map[string]struct{}{}
	for _, r := range tableRecords(t) {
		location := key(r)
		set, ok := customers[location]
		if !ok {
			set = map[string]struct{}{}
			customers[location] = set
		}
		set[r.CustomerID] = struct{}{}
	}

	groups := make([]GeoCount, 0, len(customers))
	for location, set := range customers {
		groups = append(groups, GeoCount{Location: location, CustomerCount: len(set)})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].CustomerCount != groups[j].CustomerCount {
			return groups[i].CustomerCount > groups[j].CustomerCount
		}
		return groups[i].Location < groups[j].Location
	})

	breakdown := GeoBreakdown{Groups: groups}
	if len(groups) > 0 {
		top := groups[0].Location
		breakdown.Top = &top
	}
	return breakdown
}
