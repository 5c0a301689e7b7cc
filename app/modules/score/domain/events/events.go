package scoreevents

import "github.com/google/uuid"

// Topics published by the score module.
const (
	ScoreSubmitted = "score.submitted"
)

// ScoreSubmittedPayload records one accepted judge mark for audit fan-out.
// Live views recompute from storage on read, so this event carries no
// derived state.
type ScoreSubmittedPayload struct {
	CompetitionID uuid.UUID `json:"competition_id"`
	ParticipantID uuid.UUID `json:"participant_id"`
	JudgeID       uuid.UUID `json:"judge_id"`
	RuleID        uuid.UUID `json:"rule_id"`
	Value         float64   `json:"value"`
}
