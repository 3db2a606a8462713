package insights

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DailyOrders is one calendar-day bucket of the orders/revenue series.
type DailyOrders struct {
	Day        time.Time       `json:"day"`
	OrderCount int             `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// DailySpend is one calendar-day bucket of the customer spend series. It
// shares the bucketing of DailyOrders but stays a separate table: callers
// compute summary statistics per series.
type DailySpend struct {
	Day        time.Time       `json:"day"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// DailyOrdersRevenue buckets the filtered table by approval day. Order
// counts are distinct order_id counts, never row counts: the source join
// repeats an order across its item rows. Revenue sums payment_value over all
// rows in the bucket. Days without rows are omitted, matching what the
// charts plot. Ascending by day.
func DailyOrdersRevenue(t *Table) []DailyOrders {
	type bucket struct {
		orders  map[string]struct{}
		revenue decimal.Decimal
	}

	buckets := map[time.Time]*bucket{}
	for _, r := range tableRecords(t) {
		if r.ApprovedAt == nil {
			continue
		}
		day := Day(*r.ApprovedAt)
		b, ok := buckets[day]
		if !ok {
			b = &bucket{orders: map[string]struct{}{}, revenue: decimal.Zero}
			buckets[day] = b
		}
		b.orders[r.OrderID] = struct{}{}
		b.revenue = b.revenue.Add(r.PaymentValue)
	}

	out := make([]DailyOrders, 0, len(buckets))
	for _, day := range sortedDays(buckets) {
		b := buckets[day]
		out = append(out, DailyOrders{
			Day:        day,
			OrderCount: len(b.orders),
			Revenue:    b.revenue,
		})
	}
	return out
}

// DailyCustomerSpend buckets the filtered table by approval day and sums
// payment_value per bucket. Ascending by day.
func DailyCustomerSpend(t *Table) []DailySpend {
	totals := map[time.Time]decimal.Decimal{}
	for _, r := range tableRecords(t) {
		if r.ApprovedAt == nil {
			continue
		}
		day := Day(*r.ApprovedAt)
		current, ok := totals[day]
		if !ok {
			current = decimal.Zero
		}
		totals[day] = current.Add(r.PaymentValue)
	}

	out := make([]DailySpend, 0, len(totals))
	for _, day := range sortedDays(totals) {
		out = append(out, DailySpend{Day: day, TotalSpent: totals[day]})
	}
	return out
}

func sortedDays[V any](buckets map[time.Time]V) []time.Time {
	days := make([]time.Time, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

func tableRecords(t *Table) []Record {
	if t == nil {
		return nil
	}
	return t.Records
}
