// Package sqlshared holds the SQL repositories used by every database/sql
// driver. Drivers supply a Querier (a *sql.DB or *sql.Tx) and a Dialect.
package sqlshared

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/tenancy/internal/auth/store"
)

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Dialect captures what differs between database engines.
type Dialect struct {
	// Rebind rewrites the "?" placeholders used in this package.
	Rebind func(query string) string

	// IsUniqueViolation reports whether err came from a unique or primary
	// key constraint.
	IsUniqueViolation func(err error) bool
}

func (d Dialect) q(query string) string {
	if d.Rebind == nil {
		return query
	}
	return d.Rebind(query)
}

func (d Dialect) mapWriteErr(err error) error {
	if err != nil && d.IsUniqueViolation != nil && d.IsUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

// DollarPlaceholders turns "?" markers into $1, $2, ... as postgres expects.
// Queries in this package never contain literal question marks.
func DollarPlaceholders(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Repos bundles the repositories bound to one Querier.
type Repos struct {
	q Querier
	d Dialect
}

func NewRepos(q Querier, d Dialect) Repos { return Repos{q: q, d: d} }

func (r Repos) Users() store.Users                 { return &usersRepo{q: r.q, d: r.d} }
func (r Repos) Organisations() store.Organisations { return &organisationsRepo{q: r.q, d: r.d} }
func (r Repos) Memberships() store.Memberships     { return &membershipsRepo{q: r.q, d: r.d} }

// WithTx runs fn inside a transaction begun on db and commits when fn
// succeeds. newTx wraps the raw transaction in the driver's Tx store.
func WithTx(
	ctx context.Context,
	db *sql.DB,
	newTx func(*sql.Tx) store.Tx,
	fn func(store.Tx) error,
) error {
	raw, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	tx := newTx(raw)

	// Rollback after a successful commit returns sql.ErrTxDone and is ignored.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
