package scoremigrations

import (
	"context"
	"fmt"

	scoredb "github.com/arena-ops/podium/app/modules/score/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating scores table...")

		if _, err := db.NewCreateTable().Model((*scoredb.Score)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		// The upsert in scoredb.UpsertScore relies on this unique index.
		if _, err := db.NewRaw("CREATE UNIQUE INDEX IF NOT EXISTS uniq_scores_triple ON scores (competition_id, participant_id, judge_id, rule_id)").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_scores_competition_id ON scores (competition_id)").Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Scores table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping scores table...")

		if _, err := db.NewDropTable().Model((*scoredb.Score)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		return nil
	})
}
