package validators

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/orderlens/backend/internal/insights"
	pkgerrors "github.com/orderlens/backend/pkg/errors"
)

const dateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

type rangeQuery struct {
	From string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `json:"to" validate:"omitempty,datetime=2006-01-02"`
}

// RangeFromQuery resolves the from/to query params into an aggregation
// range. A missing bound defaults to the corresponding table bound, matching
// the dashboard's full-range default. Start/end ordering is not checked
// here; the core rejects inverted ranges itself.
func RangeFromQuery(r *http.Request, bounds insights.Bounds) (insights.Range, error) {
	query := r.URL.Query()
	q := rangeQuery{
		From: strings.TrimSpace(query.Get("from")),
		To:   strings.TrimSpace(query.Get("to")),
	}
	if err := validate.Struct(&q); err != nil {
		return insights.Range{}, formatValidationErrors(err)
	}

	rng := insights.Range{Start: bounds.MinDate, End: bounds.MaxDate}
	if q.From != "" {
		start, err := time.Parse(dateLayout, q.From)
		if err != nil {
			return insights.Range{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid from date")
		}
		rng.Start = start
	}
	if q.To != "" {
		end, err := time.Parse(dateLayout, q.To)
		if err != nil {
			return insights.Range{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid to date")
		}
		rng.End = end
	}
	return rng, nil
}

func formatValidationErrors(err error) *pkgerrors.Error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := map[string]string{}
		for _, fieldErr := range errs {
			details[fieldErr.Field()] = validationMessage(fieldErr)
		}
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "datetime":
		return fmt.Sprintf("must be a %s date", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
