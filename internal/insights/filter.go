package insights

import (
	"time"

	pkgerrors "github.com/orderlens/backend/pkg/errors"
)

// FilterRange restricts the normalized table to rows whose approval
// timestamp falls within the inclusive [start, end] civil-date interval.
// Time-of-day on either bound is dropped before comparing. Rows without an
// approval timestamp are excluded. An empty result is a normal value;
// start > end is a caller error.
func FilterRange(t *Table, start, end time.Time) (*Table, error) {
	if t == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "normalized table required")
	}

	startDay, endDay := Day(start), Day(end)
	if startDay.After(endDay) {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidRange, "start date is after end date").
			WithDetails(map[string]any{
				"start": startDay.Format("2006-01-02"),
				"end":   endDay.Format("2006-01-02"),
			})
	}

	out := &Table{
		Records: make([]Record, 0, len(t.Records)),
		MinDate: t.MinDate,
		MaxDate: t.MaxDate,
	}
	for _, r := range t.Records {
		if r.ApprovedAt == nil {
			continue
		}
		day := Day(*r.ApprovedAt)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		out.Records = append(out.Records, r)
	}
	return out, nil
}
