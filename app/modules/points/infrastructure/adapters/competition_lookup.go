package pointsadapters

import (
	"context"
	"fmt"

	competitiondb "github.com/arena-ops/podium/app/modules/competition/infrastructure/repositories"
	pointsservice "github.com/arena-ops/podium/app/modules/points/application"
)

// CompetitionLookup adapts the competition repository to the points service's
// read port: finalized competitions with their persisted ranks.
type CompetitionLookup struct {
	repo competitiondb.Repository
}

func NewCompetitionLookup(repo competitiondb.Repository) *CompetitionLookup {
	return &CompetitionLookup{repo: repo}
}

func (a *CompetitionLookup) CompletedCompetitions(ctx context.Context) ([]pointsservice.CompletedCompetition, error) {
	competitions, err := a.repo.ListCompetitionsByStatus(ctx, nil, competitiondb.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("completed competitions: %w", err)
	}

	out := make([]pointsservice.CompletedCompetition, 0, len(competitions))
	for _, competition := range competitions {
		rows, err := a.repo.ListEntrants(ctx, nil, competition.ID)
		if err != nil {
			return nil, fmt.Errorf("completed competitions: entrants of %s: %w", competition.ID, err)
		}

		entries := make([]pointsservice.FinalizedEntry, len(rows))
		for i, row := range rows {
			entry := pointsservice.FinalizedEntry{
				ParticipantID:   row.ParticipantID,
				CandidateID:     row.CandidateID,
				TeamID:          row.TeamID,
				CandidateTeamID: row.CandidateTeamID,
				Rank:            row.Rank,
			}
			if row.CandidateName != nil {
				entry.CandidateName = *row.CandidateName
			}
			if row.TeamName != nil {
				entry.TeamName = *row.TeamName
			}
			entries[i] = entry
		}

		out = append(out, pointsservice.CompletedCompetition{
			ID:         competition.ID,
			Name:       competition.Name,
			TeamScored: competition.ParticipantMode == competitiondb.ModeTeam,
			Entries:    entries,
		})
	}
	return out, nil
}
