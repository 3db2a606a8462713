package insights

import (
	"context"
	"testing"
	"time"

	pkgerrors "github.com/orderlens/backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, rows ...[]string) Service {
	t.Helper()
	svc, err := NewService(normalizeRows(t, rows...))
	require.NoError(t, err)
	return svc
}

func TestNewServiceRequiresTable(t *testing.T) {
	_, err := NewService(nil)
	require.Error(t, err)
}

func TestServiceBounds(t *testing.T) {
	svc := newTestService(t,
		row("A1", "C1", "SP", "sao paulo", "delivered", "2024-01-01 10:00:00", "10", "P1", "toys", "5"),
		row("A2", "C2", "SP", "sao paulo", "delivered", "2024-03-15 10:00:00", "20", "P2", "toys", "4"),
	)

	bounds := svc.Bounds()
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), bounds.MinDate)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC), bounds.MaxDate)
}

func TestServiceOverviewRunsEveryAggregator(t *testing.T) {
	svc := newTestService(t,
		row("A1", "C1", "SP", "sao paulo", "delivered", "2024-01-01 08:00:00", "10", "P1", "toys", "5"),
		row("A1", "C1", "SP", "sao paulo", "delivered", "2024-01-01 08:00:00", "20", "P2", "toys", "5"),
		row("A1", "C1", "SP", "sao paulo", "delivered", "2024-01-01 08:00:00", "5", "P3", "toys", "5"),
		row("A2", "C2", "RJ", "rio de janeiro", "shipped", "2024-01-01 15:00:00", "50", "P4", "auto", "4"),
	)

	rng := Range{Start: date(2024, 1, 1), End: date(2024, 1, 1)}
	overview, err := svc.Overview(context.Background(), rng)
	require.NoError(t, err)

	require.Len(t, overview.DailyOrders, 1)
	assert.Equal(t, 2, overview.DailyOrders[0].OrderCount)
	assert.Equal(t, "85", overview.DailyOrders[0].Revenue.String())

	require.Len(t, overview.CustomerSpend, 1)
	assert.Equal(t, "85", overview.CustomerSpend[0].TotalSpent.String())

	assert.Len(t, overview.Categories, 2)
	require.NotNil(t, overview.Reviews.Mode)
	require.NotNil(t, overview.States.Top)
	require.NotNil(t, overview.Cities.Top)
	require.NotNil(t, overview.Statuses.Mode)
}

func TestServiceEmptyRangeYieldsEmptyTablesNoError(t *testing.T) {
	svc := newTestService(t,
		row("A1", "C1", "SP", "sao paulo", "delivered", "2024-01-01 08:00:00", "10", "P1", "toys", "5"),
	)

	// Start after all data.
	rng := Range{Start: date(2030, 1, 1), End: date(2030, 12, 31)}

	overview, err := svc.Overview(context.Background(), rng)
	require.NoError(t, err)
	assert.Empty(t, overview.DailyOrders)
	assert.Empty(t, overview.CustomerSpend)
	assert.Empty(t, overview.Categories)
	assert.Empty(t, overview.Reviews.Scores)
	assert.Nil(t, overview.Reviews.Mode)
	assert.Empty(t, overview.States.Groups)
	assert.Nil(t, overview.States.Top)
	assert.Empty(t, overview.Statuses.Counts)
	assert.Nil(t, overview.Statuses.Mode)

	daily, err := svc.DailyOrders(context.Background(), rng)
	require.NoError(t, err)
	assert.Empty(t, daily)
}

func TestServiceRejectsInvertedRangeEverywhere(t *testing.T) {
	svc := newTestService(t,
		row("A1", "C1", "SP", "sao paulo", "delivered", "2024-01-01 08:00:00", "10", "P1", "toys", "5"),
	)

	rng := Range{Start: date(2024, 2, 1), End: date(2024, 1, 1)}
	ctx := context.Background()

	_, err := svc.Overview(ctx, rng)
	requireInvalidRange(t, err)
	_, err = svc.DailyOrders(ctx, rng)
	requireInvalidRange(t, err)
	_, err = svc.CustomerSpend(ctx, rng)
	requireInvalidRange(t, err)
	_, err = svc.Categories(ctx, rng)
	requireInvalidRange(t, err)
	_, err = svc.Reviews(ctx, rng)
	requireInvalidRange(t, err)
	_, err = svc.CustomersByState(ctx, rng)
	requireInvalidRange(t, err)
	_, err = svc.CustomersByCity(ctx, rng)
	requireInvalidRange(t, err)
	_, err = svc.Statuses(ctx, rng)
	requireInvalidRange(t, err)
}

func requireInvalidRange(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeInvalidRange, typed.Code())
}
