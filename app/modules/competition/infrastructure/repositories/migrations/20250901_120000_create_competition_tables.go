package competitionmigrations

import (
	"context"
	"fmt"

	competitiondb "github.com/arena-ops/podium/app/modules/competition/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating competitions, competition_rules, and participants tables...")

		if _, err := db.NewCreateTable().Model((*competitiondb.Competition)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*competitiondb.Rule)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*competitiondb.Participant)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_rules_competition_id ON competition_rules (competition_id)").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_participants_competition_id ON participants (competition_id)").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_participants_team_id ON participants (team_id)").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_competitions_status ON competitions (status)").Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Competition tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping competition tables...")

		if _, err := db.NewDropTable().Model((*competitiondb.Participant)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*competitiondb.Rule)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*competitiondb.Competition)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		return nil
	})
}
