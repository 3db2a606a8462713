package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewScoresCountsAndMode(t *testing.T) {
	table := normalizeRows(t,
		row("A1", "C1", "SP", "sao paulo", "delivered", "2024-01-01 08:00:00", "1", "P1", "toys", "5"),
		row("A2", "C2", "SP", "sao paulo", "delivered", "2024-01-01 08:00:00", "1", "P2", "toys", "5"),
		row("A3", "C3", "SP", "sao paulo", "delivered", "2024-01-01 08:00:00", "1", "P3", "toys", "1"),
	)

	dist := ReviewScores(table)
	require.Len(t, dist.Scores, 2)
	assert.Equal(t, ReviewScoreCount{Score: 5, Count: 2}, dist.Scores[0])
	require.NotNil(t, dist.Mode)
	assert.Equal(t, 5, *dist.Mode)
}

func TestReviewScoresModeTieBreaksToSmallestScore(t *testing.T) {
	table := normalizeRows(t,
		row("A1", "C1", "SP", "sao paulo", "delivered", "2024-01-01 08:00:00", "1", "P1", "toys", "4"),
		row("A2", "C2", "SP", "sao paulo", "delivered", "2024-01-01 08:00:00", "1", "P2", "toys", "2"),
	)

	for i := 0; i < 10; i++ {
		dist := ReviewScores(table)
		require.NotNil(t, dist.Mode)
		assert.Equal(t, 2, *dist.Mode, "tie resolves to smallest score on every run")
	}
}

func TestReviewScoresSkipsUnscoredRows(t *testing.T) {
	table := normalizeRows(t,
		row("A1", "C1", "SP", "sao paulo", "delivered", "2024-01-01 08:00:00", "1", "P1", "toys", ""),
		row("A2", "C2", "SP", "sao paulo", "delivered", "2024-01-01 08:00:00", "1", "P2", "toys", "3"),
	)

	dist := ReviewScores(table)
	require.Len(t, dist.Scores, 1)
	assert.Equal(t, 3, dist.Scores[0].Score)
}

func TestReviewScoresEmptyTableHasNilMode(t *testing.T) {
	dist := ReviewScores(normalizeRows(t))
	assert.Empty(t, dist.Scores)
	assert.Nil(t, dist.Mode)
}
