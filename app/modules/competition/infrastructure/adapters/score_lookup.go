package competitionadapters

import (
	"context"

	competitiondomain "github.com/arena-ops/podium/app/modules/competition/domain"
	scoredb "github.com/arena-ops/podium/app/modules/score/infrastructure/repositories"
	"github.com/google/uuid"
)

// ScoreLookup adapts the score repository to the competition service's
// ScoreReader port.
type ScoreLookup struct {
	repo scoredb.Repository
}

func NewScoreLookup(repo scoredb.Repository) *ScoreLookup {
	return &ScoreLookup{repo: repo}
}

func (a *ScoreLookup) ScoreRows(ctx context.Context, competitionID uuid.UUID) ([]competitiondomain.ScoreRow, error) {
	scores, err := a.repo.GetScoresForCompetition(ctx, nil, competitionID)
	if err != nil {
		return nil, err
	}

	rows := make([]competitiondomain.ScoreRow, len(scores))
	for i, s := range scores {
		rows[i] = competitiondomain.ScoreRow{
			ParticipantID: s.ParticipantID,
			JudgeID:       s.JudgeID,
			RuleID:        s.RuleID,
			Value:         s.Value,
		}
	}
	return rows, nil
}
