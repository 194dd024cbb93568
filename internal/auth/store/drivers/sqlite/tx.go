package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/tenancy/internal/auth/store"
	"github.com/aussiebroadwan/tenancy/internal/auth/store/drivers/sqlshared"
)

type txStore struct {
	tx    *sql.Tx
	repos sqlshared.Repos
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{
		tx:    tx,
		repos: sqlshared.NewRepos(tx, Dialect),
	}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // caller commits or rolls back; the outer DB stays open

// Ping is a no-op for transactions; the connection is already held.
func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users                 { return t.repos.Users() }
func (t *txStore) Organisations() store.Organisations { return t.repos.Organisations() }
func (t *txStore) Memberships() store.Memberships     { return t.repos.Memberships() }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx starts
