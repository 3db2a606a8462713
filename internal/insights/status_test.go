package insights

import (
	"testing"

	"github.com/orderlens/backend/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusesCountsRows(t *testing.T) {
	// Row counting is the preserved source behavior: A1's two item rows both
	// carry "delivered" and both count.
	table := normalizeRows(t,
		row("A1", "C1", "SP", "sao paulo", "delivered", "2024-01-01 08:00:00", "1", "P1", "toys", "5"),
		row("A1", "C1", "SP", "sao paulo", "delivered", "2024-01-01 08:00:00", "1", "P2", "toys", "5"),
		row("A2", "C2", "SP", "sao paulo", "shipped", "2024-01-02 08:00:00", "1", "P3", "toys", "4"),
	)

	breakdown := OrderStatuses(table)
	require.Len(t, breakdown.Counts, 2)
	assert.Equal(t, StatusCount{Status: enums.OrderStatusDelivered, Count: 2}, breakdown.Counts[0])
	require.NotNil(t, breakdown.Mode)
	assert.Equal(t, enums.OrderStatusDelivered, *breakdown.Mode)
}

func TestOrderStatusesModeTieBreaksLexicographically(t *testing.T) {
	table := normalizeRows(t,
		row("A1", "C1", "SP", "sao paulo", "shipped", "2024-01-01 08:00:00", "1", "P1", "toys", "5"),
		row("A2", "C2", "SP", "sao paulo", "canceled", "2024-01-01 08:00:00", "1", "P2", "toys", "5"),
	)

	for i := 0; i < 10; i++ {
		breakdown := OrderStatuses(table)
		require.NotNil(t, breakdown.Mode)
		assert.Equal(t, enums.OrderStatusCanceled, *breakdown.Mode)
	}
}

func TestOrderStatusesEmptyTableHasNilMode(t *testing.T) {
	breakdown := OrderStatuses(normalizeRows(t))
	assert.Empty(t, breakdown.Counts)
	assert.Nil(t, breakdown.Mode)
}
