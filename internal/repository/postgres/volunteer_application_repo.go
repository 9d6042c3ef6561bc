package postgres

import (
	"context"
	"database/sql"
	"errors"

	"szarcommunity/internal/domain"
)

type volunteerApplicationRepository struct {
	DB *sql.DB
}

func NewVolunteerApplicationRepository(db *sql.DB) domain.VolunteerApplicationRepository {
	return &volunteerApplicationRepository{
		DB: db,
	}
}

func (r *volunteerApplicationRepository) Create(ctx context.Context, app *domain.VolunteerApplication) error {
	query := `
		INSERT INTO volunteer_applications (service_id, volunteer_id, experience, availability, motivation, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		app.ServiceID, app.VolunteerID, app.Experience, app.Availability,
		app.Motivation, app.Status, app.CreatedAt,
	).Scan(&app.ID)
}

func (r *volunteerApplicationRepository) GetByServiceAndVolunteer(ctx context.Context, serviceID, volunteerID string) (*domain.VolunteerApplication, error) {
	query := `
		SELECT id, service_id, volunteer_id, experience, availability, motivation, status, created_at
		FROM volunteer_applications
		WHERE service_id = $1 AND volunteer_id = $2
	`
	a := &domain.VolunteerApplication{}
	err := r.DB.QueryRowContext(ctx, query, serviceID, volunteerID).Scan(
		&a.ID, &a.ServiceID, &a.VolunteerID, &a.Experience,
		&a.Availability, &a.Motivation, &a.Status, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *volunteerApplicationRepository) ListByVolunteerID(ctx context.Context, volunteerID string) ([]*domain.VolunteerApplication, error) {
	query := `
		SELECT id, service_id, volunteer_id, experience, availability, motivation, status, created_at
		FROM volunteer_applications
		WHERE volunteer_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, volunteerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	apps := make([]*domain.VolunteerApplication, 0)
	for rows.Next() {
		a := &domain.VolunteerApplication{}
		err := rows.Scan(&a.ID, &a.ServiceID, &a.VolunteerID, &a.Experience,
			&a.Availability, &a.Motivation, &a.Status, &a.CreatedAt)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}
