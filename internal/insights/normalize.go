package insights

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/orderlens/backend/pkg/enums"
	pkgerrors "github.com/orderlens/backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// Layouts accepted for the dataset's timestamp cells. The source export
// writes "2006-01-02 15:04:05"; RFC3339 and bare dates cover re-exports.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// Normalize validates the raw record set and produces the immutable table
// every aggregator operates on. A missing required column is fatal and
// reported before any row is parsed; an individual cell that fails to parse
// only degrades that row (nil timestamp, zero payment, zero review score).
// The output is sorted ascending by approval timestamp with nil timestamps
// first; the sort is stable so equal timestamps keep their input order.
func Normalize(raw *RawTable) (*Table, error) {
	if raw == nil {
		return nil, pkgerrors.New(pkgerrors.CodeSchema, "raw table required")
	}

	idx, err := columnIndex(raw.Columns)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		records = append(records, Record{
			OrderID:       cell(row, idx, ColOrderID),
			CustomerID:    cell(row, idx, ColCustomerID),
			CustomerState: cell(row, idx, ColCustomerState),
			CustomerCity:  cell(row, idx, ColCustomerCity),
			Status:        enums.OrderStatus(cell(row, idx, ColOrderStatus)),
			PaymentValue:  parsePayment(cell(row, idx, ColPaymentValue)),
			ProductID:     cell(row, idx, ColProductID),
			Category:      cell(row, idx, ColCategory),
			ReviewScore:   parseScore(cell(row, idx, ColReviewScore)),

			ApprovedAt:          parseTimestamp(cell(row, idx, ColApprovedAt)),
			PurchasedAt:         parseTimestamp(cell(row, idx, ColPurchasedAt)),
			DeliveredCarrierAt:  parseTimestamp(cell(row, idx, ColDeliveredCarrierAt)),
			DeliveredCustomerAt: parseTimestamp(cell(row, idx, ColDeliveredCustomerAt)),
			EstimatedDeliveryAt: parseTimestamp(cell(row, idx, ColEstimatedDeliveryAt)),
			ShippingLimitAt:     parseTimestamp(cell(row, idx, ColShippingLimitAt)),
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].ApprovedAt, records[j].ApprovedAt
		if a == nil {
			return b != nil
		}
		if b == nil {
			return false
		}
		return a.Before(*b)
	})

	table := &Table{Records: records}
	for _, r := range records {
		if r.ApprovedAt == nil {
			continue
		}
		if table.MinDate.IsZero() || r.ApprovedAt.Before(table.MinDate) {
			table.MinDate = *r.ApprovedAt
		}
		if table.MaxDate.IsZero() || r.ApprovedAt.After(table.MaxDate) {
			table.MaxDate = *r.ApprovedAt
		}
	}
	return table, nil
}

func columnIndex(columns []string) (map[string]int, error) {
	idx := make(map[string]int, len(columns))
	for i, name := range columns {
		name = strings.TrimSpace(name)
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}

	missing := []string{}
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeSchema, "missing required columns").
			WithDetails(map[string]any{"columns": missing})
	}
	return idx, nil
}

func cell(row []string, idx map[string]int, column string) string {
	i, ok := idx[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseTimestamp(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			ts = ts.UTC()
			return &ts
		}
	}
	return nil
}

func parsePayment(value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func parseScore(value string) int {
	score, err := strconv.Atoi(value)
	if err != nil || score < 1 {
		return 0
	}
	return score
}
