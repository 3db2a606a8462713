package insights

import "sort"

// ReviewScoreCount is one review score with its occurrence count.
type ReviewScoreCount struct {
	Score int `json:"score"`
	Count int `json:"count"`
}

// ReviewDistribution holds the count-per-score table sorted descending by
// count and the mode score. Mode is nil when the filtered table carries no
// scored rows; that is the documented empty-table sentinel, not an error.
type ReviewDistribution struct {
	Scores []ReviewScoreCount `json:"scores"`
	Mode   *int               `json:"mode,omitempty"`
}

// ReviewScores counts occurrences per review score. Rows whose score failed
// to parse (stored as 0) are skipped. The mode is the score with the highest
// count; ties resolve to the smallest score so repeated runs agree.
func ReviewScores(t *Table) ReviewDistribution {
	counts := map[int]int{}
	for _, r := range tableRecords(t) {
		if r.ReviewScore < 1 {
			continue
		}
		counts[r.ReviewScore]++
	}

	scores := make([]ReviewScoreCount, 0, len(counts))
	for score, count := range counts {
		scores = append(scores, ReviewScoreCount{Score: score, Count: count})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Count != scores[j].Count {
			return scores[i].Count > scores[j].Count
		}
		return scores[i].Score < scores[j].Score
	})

	dist := ReviewDistribution{Scores: scores}
	if len(scores) > 0 {
		mode := scores[0].Score
		dist.Mode = &mode
	}
	return dist
}
