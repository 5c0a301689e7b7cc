package competitiondomain

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// ScoreRow is one raw score as recorded by a single judge against a single rule.
type ScoreRow struct {
	ParticipantID uuid.UUID
	JudgeID       uuid.UUID
	RuleID        uuid.UUID
	Value         float64
}

// Entrant is a competing unit in one competition, already resolved to a display name.
type Entrant struct {
	ID          uuid.UUID
	DisplayName string
	EntryNo     string
}

// RankedResult is the aggregated outcome for one entrant.
// Ranks share on ties and the next distinct score takes its 1-based
// position, so [10, 8, 8, 5] ranks as [1, 2, 2, 4].
type RankedResult struct {
	ParticipantID uuid.UUID
	DisplayName   string
	EntryNo       string
	Score         float64
	Rank          int
}

// Aggregate reduces raw score rows into one ranked score per entrant.
//
// Per (entrant, judge) the rule values are summed into a judge total. The
// entrant's score is the mean of the best bestOfJudges judge totals, rounded
// to two decimals. A non-positive bestOfJudges means every judge counts, as
// does a value larger than the number of judges who actually scored.
//
// Rows referencing an unknown entrant are dropped. Entrants with no rows are
// still ranked with score 0. Ties keep the input order of entrants; there is
// no secondary tie-break.
func Aggregate(entrants []Entrant, rows []ScoreRow, bestOfJudges int) []RankedResult {
	if len(entrants) == 0 {
		return nil
	}

	known := make(map[uuid.UUID]struct{}, len(entrants))
	for _, e := range entrants {
		known[e.ID] = struct{}{}
	}

	// entrant -> judge -> summed rule values
	judgeTotals := make(map[uuid.UUID]map[uuid.UUID]float64, len(entrants))
	for _, row := range rows {
		if _, ok := known[row.ParticipantID]; !ok {
			continue
		}
		byJudge := judgeTotals[row.ParticipantID]
		if byJudge == nil {
			byJudge = make(map[uuid.UUID]float64)
			judgeTotals[row.ParticipantID] = byJudge
		}
		byJudge[row.JudgeID] += row.Value
	}

	results := make([]RankedResult, len(entrants))
	for i, e := range entrants {
		totals := make([]float64, 0, len(judgeTotals[e.ID]))
		for _, total := range judgeTotals[e.ID] {
			totals = append(totals, total)
		}
		results[i] = RankedResult{
			ParticipantID: e.ID,
			DisplayName:   e.DisplayName,
			EntryNo:       e.EntryNo,
			Score:         bestOfAverage(totals, bestOfJudges),
		}
	}

	// Stable sort keeps input order among exact ties.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	assignRanks(results)
	return results
}

// bestOfAverage averages the best n of the given judge totals.
func bestOfAverage(totals []float64, n int) float64 {
	if len(totals) == 0 {
		return 0
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(totals)))

	if n <= 0 || n > len(totals) {
		n = len(totals)
	}

	var sum float64
	for _, t := range totals[:n] {
		sum += t
	}
	return roundScore(sum / float64(n))
}

// assignRanks walks a score-descending slice and assigns ranks with shared
// ties: a score equal to the previous one reuses its rank, a lower score
// takes its 1-based position.
func assignRanks(results []RankedResult) {
	rank := 1
	for i := range results {
		if i > 0 && results[i].Score < results[i-1].Score {
			rank = i + 1
		}
		results[i].Rank = rank
	}
}

func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
