package pointsdomain

// Points uses a custom type so championship points never mix with raw scores.
type Points int

// Table maps a final competition rank to championship points.
// Ranks outside the table earn zero.
type Table map[int]Points

var (
	// IndividualTable is the canonical table used by the live points engine
	// for every competition, regardless of participant mode.
	IndividualTable = Table{1: 5, 2: 3, 3: 1}

	// TeamTable is the weighted table for team-mode competitions. It is only
	// reachable from the historical results importer; the live engine never
	// selects it. Callers pick a table explicitly so that asymmetry stays
	// visible at the call site.
	TeamTable = Table{1: 10, 2: 5, 3: 3}
)

// PointsForRank looks up the points earned by a rank. Non-podium ranks earn 0.
func (t Table) PointsForRank(rank int) Points {
	return t[rank]
}
