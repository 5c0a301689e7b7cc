package competitionservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	competitiondomain "github.com/arena-ops/podium/app/modules/competition/domain"
	competitiondb "github.com/arena-ops/podium/app/modules/competition/infrastructure/repositories"
)

func TestLiveStandings_BestOfJudgesApplied(t *testing.T) {
	competitionID := uuid.New()
	p1, p2 := uuid.New(), uuid.New()
	j1, j2, j3 := uuid.New(), uuid.New(), uuid.New()
	bestOf := 2

	repo := NewFakeCompetitionRepo()
	repo.GetCompetitionFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) (*competitiondb.Competition, error) {
		return &competitiondb.Competition{
			ID:               competitionID,
			ParticipantMode:  competitiondb.ModeIndividual,
			BestOfJudgeCount: &bestOf,
			Status:           competitiondb.StatusLive,
		}, nil
	}
	repo.ListEntrantsFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) ([]competitiondb.EntrantRow, error) {
		return []competitiondb.EntrantRow{
			{ParticipantID: p1, CandidateName: strPtr("Asha")},
			{ParticipantID: p2, CandidateName: strPtr("Binu")},
		}, nil
	}

	scores := &FakeScoreReader{
		ScoreRowsFunc: func(ctx context.Context, id uuid.UUID) ([]competitiondomain.ScoreRow, error) {
			return []competitiondomain.ScoreRow{
				{ParticipantID: p1, JudgeID: j1, RuleID: uuid.New(), Value: 9},
				{ParticipantID: p1, JudgeID: j2, RuleID: uuid.New(), Value: 7},
				{ParticipantID: p1, JudgeID: j3, RuleID: uuid.New(), Value: 5},
				{ParticipantID: p2, JudgeID: j1, RuleID: uuid.New(), Value: 6},
			}, nil
		},
	}

	results, err := newTestCompetitionService(repo, scores, nil).LiveStandings(context.Background(), competitionID)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// best 2 of (9,7,5) averages to 8; a single judge total stands alone
	require.Equal(t, "Asha", results[0].DisplayName)
	require.Equal(t, 8.0, results[0].Score)
	require.Equal(t, "Binu", results[1].DisplayName)
	require.Equal(t, 6.0, results[1].Score)
}

func TestLiveStandings_TeamModeDisplayNames(t *testing.T) {
	competitionID := uuid.New()
	entry := uuid.New()

	repo := NewFakeCompetitionRepo()
	repo.GetCompetitionFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) (*competitiondb.Competition, error) {
		return &competitiondb.Competition{
			ID:              competitionID,
			ParticipantMode: competitiondb.ModeTeam,
			Status:          competitiondb.StatusLive,
		}, nil
	}
	repo.ListEntrantsFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) ([]competitiondb.EntrantRow, error) {
		return []competitiondb.EntrantRow{
			{ParticipantID: entry, TeamName: strPtr("Falcons"), CandidateName: strPtr("Asha")},
		}, nil
	}

	results, err := newTestCompetitionService(repo, &FakeScoreReader{}, nil).LiveStandings(context.Background(), competitionID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Falcons (Asha)", results[0].DisplayName)
}

func TestLiveStandings_UnknownCompetition(t *testing.T) {
	_, err := newTestCompetitionService(NewFakeCompetitionRepo(), &FakeScoreReader{}, nil).LiveStandings(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrCompetitionNotFound)
}

func TestLiveStandings_NoEntrants(t *testing.T) {
	competitionID := uuid.New()
	repo := NewFakeCompetitionRepo()
	repo.GetCompetitionFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) (*competitiondb.Competition, error) {
		return &competitiondb.Competition{ID: competitionID, Status: competitiondb.StatusLive}, nil
	}

	results, err := newTestCompetitionService(repo, &FakeScoreReader{}, nil).LiveStandings(context.Background(), competitionID)
	require.NoError(t, err)
	require.Empty(t, results)
}
