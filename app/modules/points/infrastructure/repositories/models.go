package pointsdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Team owns candidates and team-mode entries. TotalPoints is a denormalized
// cache recomputed by the points engine; it is never mutated incrementally.
type Team struct {
	bun.BaseModel `bun:"table:teams,alias:t"`

	ID          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Name        string    `bun:"name,notnull"`
	AvatarURL   *string   `bun:"avatar_url"`
	TotalPoints int       `bun:"total_points,nullzero,default:0"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Candidate is an individual competitor belonging to one team.
type Candidate struct {
	bun.BaseModel `bun:"table:candidates,alias:cand"`

	ID        uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Name      string     `bun:"name,notnull"`
	TeamID    *uuid.UUID `bun:"team_id,type:uuid"`
	BibNo     *string    `bun:"bib_no"`
	CreatedAt time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
