package postgres

import (
	"fmt"

	"github.com/aussiebroadwan/tenancy/internal/auth/store/drivers/postgres/migrations"
	"github.com/aussiebroadwan/tenancy/internal/auth/store/drivers/sqlshared"

	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
)

// ApplyMigrations brings the schema up to date. Running it again is a no-op.
func (s *Store) ApplyMigrations() error {
	driver, err := pgxmigrate.WithInstance(s.db, &pgxmigrate.Config{})
	if err != nil {
		return fmt.Errorf("postgres migrate driver: %w", err)
	}
	return sqlshared.Migrate(migrations.Migrations, "pgx5", driver)
}
