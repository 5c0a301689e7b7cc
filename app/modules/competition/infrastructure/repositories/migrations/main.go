package competitionmigrations

import "github.com/uptrace/bun/migrate"

var Migrations = migrate.NewMigrations()

func init() {
	// Derive stable migration IDs from file names for MustRegister calls
	// spread across separate files.
	if err := Migrations.DiscoverCaller(); err != nil {
		panic(err)
	}
}
