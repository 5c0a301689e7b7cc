package scoredb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Score is one judge's mark against one rule for one participant. The unique
// index on (competition_id, participant_id, judge_id, rule_id) plus upsert
// writes keep at most one row per triple; the aggregator never deduplicates.
type Score struct {
	bun.BaseModel `bun:"table:scores,alias:s"`

	ID            uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	CompetitionID uuid.UUID `bun:"competition_id,notnull,type:uuid"`
	ParticipantID uuid.UUID `bun:"participant_id,notnull,type:uuid"`
	JudgeID       uuid.UUID `bun:"judge_id,notnull,type:uuid"`
	RuleID        uuid.UUID `bun:"rule_id,notnull,type:uuid"`
	Value         float64   `bun:"value,notnull"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
