package sqlshared

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/tenancy/internal/auth/domain"
)

type organisationsRepo struct {
	q Querier
	d Dialect
}

func scanOrganisation(row rowScanner) (domain.Organisation, error) {
	var (
		o    domain.Organisation
		desc sql.NullString
	)
	if err := row.Scan(&o.ID, &o.Name, &desc, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return domain.Organisation{}, err
	}
	o.Description = mapNullString(desc)
	return o, nil
}

func (r *organisationsRepo) GetOrganisationByID(ctx context.Context, id string) (domain.Organisation, error) {
	row := r.q.QueryRowContext(ctx, r.d.q(`
		SELECT id, name, description, created_at, updated_at
		FROM organisations WHERE id = ?`), id)
	o, err := scanOrganisation(row)
	if err != nil {
		return domain.Organisation{}, mapNotFound(err)
	}
	return o, nil
}

func (r *organisationsRepo) CreateOrganisation(ctx context.Context, o domain.Organisation) error {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = o.CreatedAt
	}

	_, err := r.q.ExecContext(ctx, r.d.q(`
		INSERT INTO organisations (id, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`),
		o.ID, o.Name, mapStringNull(o.Description), o.CreatedAt, o.UpdatedAt,
	)
	return r.d.mapWriteErr(err)
}

func (r *organisationsRepo) ListOrganisationsForUser(ctx context.Context, userID string) ([]domain.Organisation, error) {
	rows, err := r.q.QueryContext(ctx, r.d.q(`
		SELECT o.id, o.name, o.description, o.created_at, o.updated_at
		FROM organisations o
		JOIN memberships m ON m.org_id = o.id
		WHERE m.user_id = ?
		ORDER BY m.created_at, o.id`), userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Organisation, 0)
	for rows.Next() {
		o, err := scanOrganisation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
