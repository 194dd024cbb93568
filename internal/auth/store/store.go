package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/tenancy/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Sub-repositories are exposed as methods so a Tx-scoped
// store hands out repositories bound to the same transaction.
type Store interface {
	Users() Users
	Organisations() Organisations
	Memberships() Memberships

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. The transaction is rolled
	// back if fn returns an error and committed otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and the registration pre-check.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user. A duplicate email yields ErrAlreadyExists;
	// the unique index is the authority, not any earlier lookup.
	CreateUser(ctx context.Context, u domain.User) error
}

type Organisations interface {
	GetOrganisationByID(ctx context.Context, id string) (domain.Organisation, error)

	CreateOrganisation(ctx context.Context, o domain.Organisation) error

	// ListOrganisationsForUser returns the organisations userID belongs to,
	// oldest first.
	ListOrganisationsForUser(ctx context.Context, userID string) ([]domain.Organisation, error)
}

type Memberships interface {
	// AddMember links userID to orgID. Adding an existing member is a no-op.
	AddMember(ctx context.Context, m domain.Membership) error

	// IsMember reports whether userID belongs to orgID.
	IsMember(ctx context.Context, orgID, userID string) (bool, error)

	// SharesOrganisation reports whether the two users have at least one
	// organisation in common.
	SharesOrganisation(ctx context.Context, userA, userB string) (bool, error)

	// ListMembers returns the users that belong to orgID, oldest membership first.
	ListMembers(ctx context.Context, orgID string) ([]domain.User, error)
}
