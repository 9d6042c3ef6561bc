package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"szarcommunity/internal/domain"
)

type profileRepository struct {
	DB *sql.DB
}

func NewProfileRepository(db *sql.DB) domain.ProfileRepository {
	return &profileRepository{
		DB: db,
	}
}

func (r *profileRepository) Create(ctx context.Context, p *domain.Profile) error {
	query := `
		INSERT INTO profiles (id, full_name, bio, skills, volunteer_hours, is_volunteer, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.FullName, p.Bio, pq.Array(p.Skills),
		p.VolunteerHours, p.IsVolunteer, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `
		SELECT id, full_name, bio, skills, volunteer_hours, is_volunteer, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`
	p := &domain.Profile{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.FullName, &p.Bio, pq.Array(&p.Skills),
		&p.VolunteerHours, &p.IsVolunteer, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) Update(ctx context.Context, id string, upd domain.ProfileUpdate) (*domain.Profile, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []any{}
	n := 1
	addSet := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}
	if upd.FullName != nil {
		addSet("full_name", *upd.FullName)
	}
	if upd.Bio != nil {
		addSet("bio", *upd.Bio)
	}
	if upd.Skills != nil {
		addSet("skills", pq.Array(upd.Skills))
	}
	if upd.IsVolunteer != nil {
		addSet("is_volunteer", *upd.IsVolunteer)
	}
	if n == 1 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE profiles SET %s WHERE id = $%d
		RETURNING id, full_name, bio, skills, volunteer_hours, is_volunteer, created_at, updated_at
	`, strings.Join(setClauses, ", "), n)
	p := &domain.Profile{}
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&p.ID, &p.FullName, &p.Bio, pq.Array(&p.Skills),
		&p.VolunteerHours, &p.IsVolunteer, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) MarkVolunteer(ctx context.Context, id string) error {
	query := `UPDATE profiles SET is_volunteer = TRUE, updated_at = NOW() WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
