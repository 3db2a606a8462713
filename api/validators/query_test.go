package validators

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/orderlens/backend/internal/insights"
	pkgerrors "github.com/orderlens/backend/pkg/errors"
)

func testBounds() insights.Bounds {
	return insights.Bounds{
		MinDate: time.Date(2023, 1, 1, 8, 0, 0, 0, time.UTC),
		MaxDate: time.Date(2024, 12, 31, 20, 0, 0, 0, time.UTC),
	}
}

func TestRangeFromQueryDefaultsToBounds(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/overview", nil)

	rng, err := RangeFromQuery(r, testBounds())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rng.Start.Equal(testBounds().MinDate) || !rng.End.Equal(testBounds().MaxDate) {
		t.Fatalf("expected table bounds, got %v..%v", rng.Start, rng.End)
	}
}

func TestRangeFromQueryParsesDates(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x?from=2024-01-01&to=2024-01-31", nil)

	rng, err := RangeFromQuery(r, testBounds())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rng.Start != time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected start %v", rng.Start)
	}
	if rng.End != time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("unexpected end %v", rng.End)
	}
}

func TestRangeFromQueryAllowsSingleBound(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x?from=2024-06-01", nil)

	rng, err := RangeFromQuery(r, testBounds())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rng.End.Equal(testBounds().MaxDate) {
		t.Fatalf("missing to should default to max date, got %v", rng.End)
	}
}

func TestRangeFromQueryRejectsMalformedDates(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x?from=01-01-2024", nil)

	_, err := RangeFromQuery(r, testBounds())
	if err == nil {
		t.Fatal("expected validation error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %v", err)
	}
}

func TestRangeFromQueryDoesNotPreCheckOrdering(t *testing.T) {
	// Inverted ranges must reach the core so it can answer with its
	// deterministic InvalidRange failure.
	r := httptest.NewRequest(http.MethodGet, "/x?from=2024-02-01&to=2024-01-01", nil)

	rng, err := RangeFromQuery(r, testBounds())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rng.Start.After(rng.End) {
		t.Fatalf("expected inverted range to pass through, got %v..%v", rng.Start, rng.End)
	}
}
