package sqlshared

import (
	"context"
	"time"

	"github.com/aussiebroadwan/tenancy/internal/auth/domain"
)

type membershipsRepo struct {
	q Querier
	d Dialect
}

func (r *membershipsRepo) AddMember(ctx context.Context, m domain.Membership) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	_, err := r.q.ExecContext(ctx, r.d.q(`
		INSERT INTO memberships (org_id, user_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (org_id, user_id) DO NOTHING`),
		m.OrgID, m.UserID, m.CreatedAt,
	)
	return r.d.mapWriteErr(err)
}

func (r *membershipsRepo) IsMember(ctx context.Context, orgID, userID string) (bool, error) {
	var exists bool
	err := r.q.QueryRowContext(ctx, r.d.q(`
		SELECT EXISTS (
			SELECT 1 FROM memberships WHERE org_id = ? AND user_id = ?
		)`), orgID, userID).Scan(&exists)
	return exists, err
}

func (r *membershipsRepo) SharesOrganisation(ctx context.Context, userA, userB string) (bool, error) {
	var exists bool
	err := r.q.QueryRowContext(ctx, r.d.q(`
		SELECT EXISTS (
			SELECT 1
			FROM memberships a
			JOIN memberships b ON b.org_id = a.org_id
			WHERE a.user_id = ? AND b.user_id = ?
		)`), userA, userB).Scan(&exists)
	return exists, err
}

func (r *membershipsRepo) ListMembers(ctx context.Context, orgID string) ([]domain.User, error) {
	rows, err := r.q.QueryContext(ctx, r.d.q(`
		SELECT u.id, u.first_name, u.last_name, u.email, u.phone, u.password_hash, u.created_at, u.updated_at
		FROM users u
		JOIN memberships m ON m.user_id = u.id
		WHERE m.org_id = ?
		ORDER BY m.created_at, u.id`), orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
