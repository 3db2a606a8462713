package insights

import (
	"time"

	"github.com/orderlens/backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Column names of the flat source join (orders x items x payments x
// customers x products x reviews). One row per (order, item, payment,
// review) combination, so logical entities fan out across rows.
const (
	ColOrderID       = "order_id"
	ColCustomerID    = "customer_id"
	ColCustomerState = "customer_state"
	ColCustomerCity  = "customer_city"
	ColOrderStatus   = "order_status"
	ColApprovedAt    = "order_approved_at"
	ColPaymentValue  = "payment_value"
	ColProductID     = "product_id"
	ColCategory      = "product_category_name_english"
	ColReviewScore   = "review_score"

	ColPurchasedAt         = "order_purchase_timestamp"
	ColDeliveredCarrierAt  = "order_delivered_carrier_date"
	ColDeliveredCustomerAt = "order_delivered_customer_date"
	ColEstimatedDeliveryAt = "order_estimated_delivery_date"
	ColShippingLimitAt     = "shipping_limit_date"
)

var requiredColumns = []string{
	ColOrderID,
	ColCustomerID,
	ColCustomerState,
	ColCustomerCity,
	ColOrderStatus,
	ColApprovedAt,
	ColPaymentValue,
	ColProductID,
	ColCategory,
	ColReviewScore,
}

// RawTable is the unparsed record set handed over by the loader collaborator.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// Record is one normalized row. Immutable once normalized; aggregators only
// ever read it.
type Record struct {
	OrderID       string
	CustomerID    string
	CustomerState string
	CustomerCity  string
	Status        enums.OrderStatus
	PaymentValue  decimal.Decimal
	ProductID     string
	Category      string
	// ReviewScore is 0 when the source cell was missing or unparseable;
	// the review aggregator only counts scores >= 1.
	ReviewScore int

	// ApprovedAt is nil for rows whose approval timestamp was missing or
	// unparseable. Such rows are invisible to time-bucketed aggregates and
	// range filtering but still feed the non-date-keyed aggregators.
	ApprovedAt *time.Time

	PurchasedAt         *time.Time
	DeliveredCarrierAt  *time.Time
	DeliveredCustomerAt *time.Time
	EstimatedDeliveryAt *time.Time
	ShippingLimitAt     *time.Time
}

// Table is a normalized, approval-ordered record set. MinDate and MaxDate
// bound the valid filter range exposed to callers; both are zero when no row
// carries an approval timestamp.
type Table struct {
	Records []Record
	MinDate time.Time
	MaxDate time.Time
}

// Day truncates a timestamp to its calendar day, the bucketing key for all
// time-series aggregates.
func Day(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
