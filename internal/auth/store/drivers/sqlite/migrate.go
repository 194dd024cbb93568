package sqlite

import (
	"fmt"

	"github.com/aussiebroadwan/tenancy/internal/auth/store/drivers/sqlite/migrations"
	"github.com/aussiebroadwan/tenancy/internal/auth/store/drivers/sqlshared"

	"github.com/golang-migrate/migrate/v4/database/sqlite"
)

// ApplyMigrations applies any pending migrations embedded in the binary.
func (s *Store) ApplyMigrations() error {
	driver, err := sqlite.WithInstance(s.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("sqlite migrate driver: %w", err)
	}
	return sqlshared.Migrate(migrations.Migrations, "sqlite", driver)
}
