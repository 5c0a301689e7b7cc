package pointsservice

import (
	"context"
	"errors"
	"fmt"
	"sort"

	pointsdomain "github.com/arena-ops/podium/app/modules/points/domain"
	pointsdb "github.com/arena-ops/podium/app/modules/points/infrastructure/repositories"
	"github.com/google/uuid"
)

// ErrTeamNotFound signals a points computation for an unknown team.
var ErrTeamNotFound = errors.New("team not found")

// TeamPoints sums a team's championship points across every completed
// competition's persisted ranks.
//
// Always the individual table, whatever the competition mode: the weighted
// team table belongs to the historical importer alone. Multiple candidates
// from one team placing in the same competition each contribute additively;
// zero-point participations count toward nothing and are left out of the
// breakdown.
func (s *PointsService) TeamPoints(ctx context.Context, teamID uuid.UUID) (*TeamPointsData, error) {
	ctx, span := s.tracer.Start(ctx, "points.TeamPoints")
	defer span.End()

	team, err := s.teams.GetTeam(ctx, nil, teamID)
	if err != nil {
		if errors.Is(err, pointsdb.ErrNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("team points: %w", err)
	}

	completed, err := s.competitions.CompletedCompetitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("team points: %w", err)
	}

	data := &TeamPointsData{TeamID: team.ID, TeamName: team.Name}
	for _, competition := range completed {
		for _, entry := range competition.Entries {
			if entry.Rank == nil || !belongsToTeam(entry, competition.TeamScored, teamID) {
				continue
			}

			points := pointsdomain.IndividualTable.PointsForRank(*entry.Rank)
			data.TotalPoints += points
			if points == 0 {
				continue
			}

			name := entry.CandidateName
			if competition.TeamScored {
				name = entry.TeamName
			}
			data.Breakdown = append(data.Breakdown, BreakdownEntry{
				CompetitionID:   competition.ID,
				CompetitionName: competition.Name,
				Rank:            *entry.Rank,
				Points:          points,
				ParticipantName: name,
			})
		}
	}

	sort.SliceStable(data.Breakdown, func(i, j int) bool {
		return data.Breakdown[i].Points > data.Breakdown[j].Points
	})
	return data, nil
}

// Standings computes every team's points, ordered best first.
func (s *PointsService) Standings(ctx context.Context) ([]TeamPointsData, error) {
	ctx, span := s.tracer.Start(ctx, "points.Standings")
	defer span.End()

	teams, err := s.teams.ListTeams(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("standings: %w", err)
	}

	standings := make([]TeamPointsData, 0, len(teams))
	for _, team := range teams {
		data, err := s.TeamPoints(ctx, team.ID)
		if err != nil {
			return nil, err
		}
		standings = append(standings, *data)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].TotalPoints > standings[j].TotalPoints
	})
	return standings, nil
}

// belongsToTeam resolves ownership of a finalized entry: team-mode entries
// match on the entry's own team id, individual entries through the backing
// candidate's team.
func belongsToTeam(entry FinalizedEntry, teamScored bool, teamID uuid.UUID) bool {
	if teamScored {
		return entry.TeamID != nil && *entry.TeamID == teamID
	}
	return entry.CandidateTeamID != nil && *entry.CandidateTeamID == teamID
}
