package pointsmigrations

import (
	"context"
	"fmt"

	pointsdb "github.com/arena-ops/podium/app/modules/points/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating teams and candidates tables...")

		if _, err := db.NewCreateTable().Model((*pointsdb.Team)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*pointsdb.Candidate)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_candidates_team_id ON candidates (team_id)").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_teams_total_points ON teams (total_points DESC)").Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Team tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping team tables...")

		if _, err := db.NewDropTable().Model((*pointsdb.Candidate)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*pointsdb.Team)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		return nil
	})
}
