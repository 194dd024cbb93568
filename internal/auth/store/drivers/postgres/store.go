// Package postgres backs the store with PostgreSQL through the pgx
// database/sql driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/aussiebroadwan/tenancy/internal/auth/store"
	"github.com/aussiebroadwan/tenancy/internal/auth/store/drivers/sqlshared"
)

// Dialect is the postgres flavour of the shared SQL repositories.
var Dialect = sqlshared.Dialect{
	Rebind:            sqlshared.DollarPlaceholders,
	IsUniqueViolation: isUniqueViolation,
}

type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

// NewStore opens a pool against dsn and checks that the server answers.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("postgres: empty DSN")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sqlshared.WithTx(ctx, s.db, func(tx *sql.Tx) store.Tx { return newTx(tx) }, fn)
}

func (s *Store) repos() sqlshared.Repos { return sqlshared.NewRepos(s.db, Dialect) }

func (s *Store) Users() store.Users                 { return s.repos().Users() }
func (s *Store) Organisations() store.Organisations { return s.repos().Organisations() }
func (s *Store) Memberships() store.Memberships     { return s.repos().Memberships() }

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
