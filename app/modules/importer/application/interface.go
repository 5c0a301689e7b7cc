package importerservice

import (
	"context"

	"github.com/google/uuid"
)

// ImportSummary reports what one import run touched.
type ImportSummary struct {
	RowsImported        int `json:"rows_imported"`
	RowsSkipped         int `json:"rows_skipped"`
	CompetitionsCreated int `json:"competitions_created"`
	ScoresWritten       int `json:"scores_written"`
}

// Service is the importer module's application surface.
type Service interface {
	// ImportResults parses a historical results file (csv or xlsx) and loads
	// placements into storage: missing competitions, teams, candidates and
	// participant entries are created, ranks and derived totals persisted,
	// and a synthetic score row written against each competition's first
	// rule so the audit trail stays consistent with judged competitions.
	ImportResults(ctx context.Context, fileData []byte, fileName string, importerID uuid.UUID) (*ImportSummary, error)
}
