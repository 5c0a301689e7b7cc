package importerservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/arena-ops/podium/app/modules/importer/infrastructure/parsers"
	pointsdomain "github.com/arena-ops/podium/app/modules/points/domain"

	competitiondb "github.com/arena-ops/podium/app/modules/competition/infrastructure/repositories"
	scoredb "github.com/arena-ops/podium/app/modules/score/infrastructure/repositories"
)

const (
	defaultRuleName      = "Rank"
	defaultRuleMaxScore  = 10
	teamMaxScorePerJudge = 10.0
	soloMaxScorePerJudge = 5.0
	derivedScoreMultiple = 10
)

// ImportResults loads a historical results file into storage. The whole file
// runs in one transaction; rows that fail validation are counted and skipped
// without aborting the rest.
func (s *ImporterService) ImportResults(ctx context.Context, fileData []byte, fileName string, importerID uuid.UUID) (*ImportSummary, error) {
	ctx, span := s.tracer.Start(ctx, "ImportResults")
	defer span.End()

	parser, err := s.parserFactory.GetParser(fileName)
	if err != nil {
		return nil, err
	}

	rows, err := parser.Parse(fileData, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", fileName, err)
	}

	summary := &ImportSummary{}
	err = s.runInTx(ctx, func(ctx context.Context, db bun.IDB) error {
		for _, row := range rows {
			imported, err := s.importRow(ctx, db, row, importerID, summary)
			if err != nil {
				return err
			}
			if imported {
				summary.RowsImported++
			} else {
				summary.RowsSkipped++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Historical results imported",
		slog.String("file", fileName),
		slog.Int("rows_imported", summary.RowsImported),
		slog.Int("rows_skipped", summary.RowsSkipped),
		slog.Int("competitions_created", summary.CompetitionsCreated),
		slog.Int("scores_written", summary.ScoresWritten),
	)
	return summary, nil
}

// importRow loads one placement. It returns false for rows that fail
// validation; storage errors abort the import.
func (s *ImporterService) importRow(ctx context.Context, db bun.IDB, row parsers.ResultRow, importerID uuid.UUID, summary *ImportSummary) (bool, error) {
	if row.CompetitionName == "" || row.TeamName == "" || row.CandidateName == "" {
		return false, nil
	}

	rank := ParsePosition(row.Position)
	if rank == 0 {
		return false, nil
	}

	competition, err := s.resolveCompetition(ctx, db, row, summary)
	if err != nil {
		return false, err
	}

	team, err := s.teams.FindOrCreateTeamByName(ctx, db, row.TeamName)
	if err != nil {
		return false, err
	}

	candidate, err := s.teams.FindOrCreateCandidate(ctx, db, row.CandidateName, team.ID)
	if err != nil {
		return false, err
	}

	participant, err := s.competitions.FindOrCreateParticipant(ctx, db, &competitiondb.Participant{
		CompetitionID: competition.ID,
		CandidateID:   &candidate.ID,
		TeamID:        &team.ID,
		Status:        "active",
	})
	if err != nil {
		return false, err
	}

	table := pointsdomain.IndividualTable
	if competition.ParticipantMode == competitiondb.ModeTeam {
		table = pointsdomain.TeamTable
	}
	points := table.PointsForRank(rank)

	totalScore := float64(int(points) * derivedScoreMultiple)
	if err := s.competitions.UpdateParticipantResult(ctx, db, participant.ID, rank, totalScore); err != nil {
		return false, err
	}

	rule, err := s.resolveRule(ctx, db, competition.ID)
	if err != nil {
		return false, err
	}

	if err := s.scores.UpsertScore(ctx, db, &scoredb.Score{
		CompetitionID: competition.ID,
		ParticipantID: participant.ID,
		JudgeID:       importerID,
		RuleID:        rule.ID,
		Value:         float64(points),
	}); err != nil {
		return false, err
	}
	summary.ScoresWritten++

	// Imported competitions are terminal regardless of how they were found.
	if competition.Status != competitiondb.StatusCompleted {
		err := s.competitions.TransitionStatus(ctx, db, competition.ID, competition.Status, competitiondb.StatusCompleted)
		if err != nil && !errors.Is(err, competitiondb.ErrNoRowsAffected) {
			return false, err
		}
		competition.Status = competitiondb.StatusCompleted
	}

	return true, nil
}

// resolveCompetition finds a competition by name or creates it as completed,
// with the mode and judge ceiling implied by the row.
func (s *ImporterService) resolveCompetition(ctx context.Context, db bun.IDB, row parsers.ResultRow, summary *ImportSummary) (*competitiondb.Competition, error) {
	competition, err := s.competitions.FindCompetitionByName(ctx, db, row.CompetitionName)
	if err == nil {
		return competition, nil
	}
	if !errors.Is(err, competitiondb.ErrNotFound) {
		return nil, err
	}

	mode := competitiondb.ModeIndividual
	maxScore := soloMaxScorePerJudge
	rowMode := strings.ToLower(row.Mode)
	if strings.Contains(rowMode, "group") || strings.Contains(rowMode, "team") {
		mode = competitiondb.ModeTeam
		maxScore = teamMaxScorePerJudge
	}

	competition = &competitiondb.Competition{
		ID:               uuid.New(),
		Name:             row.CompetitionName,
		ParticipantMode:  mode,
		MaxScorePerJudge: &maxScore,
		Status:           competitiondb.StatusCompleted,
	}
	if err := s.competitions.CreateCompetition(ctx, db, competition); err != nil {
		return nil, err
	}
	summary.CompetitionsCreated++
	return competition, nil
}

// resolveRule returns the competition's first rule, creating a default "Rank"
// rule when none exist so the synthetic score row has something to hang on.
func (s *ImporterService) resolveRule(ctx context.Context, db bun.IDB, competitionID uuid.UUID) (*competitiondb.Rule, error) {
	rule, err := s.competitions.FirstRule(ctx, db, competitionID)
	if err == nil {
		return rule, nil
	}
	if !errors.Is(err, competitiondb.ErrNotFound) {
		return nil, err
	}

	rule = &competitiondb.Rule{
		ID:            uuid.New(),
		CompetitionID: competitionID,
		Name:          defaultRuleName,
		MaxScore:      defaultRuleMaxScore,
		OrderIndex:    1,
	}
	if err := s.competitions.CreateRule(ctx, db, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// ParsePosition interprets a raw placement cell. "1", "1st", "I" and "first"
// all mean first place; anything else maps to zero and the row is skipped.
func ParsePosition(position string) int {
	pos := strings.ToLower(strings.TrimSpace(position))
	switch {
	case strings.Contains(pos, "1") || pos == "i" || strings.Contains(pos, "first"):
		return 1
	case strings.Contains(pos, "2") || pos == "ii" || strings.Contains(pos, "second"):
		return 2
	case strings.Contains(pos, "3") || pos == "iii" || strings.Contains(pos, "third"):
		return 3
	default:
		return 0
	}
}
