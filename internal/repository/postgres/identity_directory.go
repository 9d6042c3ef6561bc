package postgres

import (
	"context"
	"database/sql"
	"errors"

	"szarcommunity/internal/domain"
)

type identityDirectory struct {
	DB *sql.DB
}

func NewIdentityDirectory(db *sql.DB) domain.IdentityDirectory {
	return &identityDirectory{
		DB: db,
	}
}

// Resolve looks up a person's email and display name. A user without a
// profile row still resolves; the name comes back empty. Unknown IDs
// return domain.ErrNotFound.
func (r *identityDirectory) Resolve(ctx context.Context, personID string) (*domain.Contact, error) {
	query := `
		SELECT COALESCE(u.email, ''), COALESCE(p.full_name, '')
		FROM users u
		LEFT JOIN profiles p ON p.id = u.id
		WHERE u.id = $1
	`
	c := &domain.Contact{}
	err := r.DB.QueryRowContext(ctx, query, personID).Scan(&c.Email, &c.FullName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}
