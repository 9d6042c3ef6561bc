package postgres

import (
	"context"
	"database/sql"

	"szarcommunity/internal/domain"
)

type sponsorshipRepository struct {
	DB *sql.DB
}

func NewSponsorshipRepository(db *sql.DB) domain.SponsorshipRepository {
	return &sponsorshipRepository{
		DB: db,
	}
}

func (r *sponsorshipRepository) Create(ctx context.Context, app *domain.SponsorshipApplication) error {
	query := `
		INSERT INTO sponsorship_applications (organization_name, contact_name, email, phone,
			sponsorship_type, description, contribution_amount, start_date, duration, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		app.OrganizationName, app.ContactName, app.Email, app.Phone,
		app.SponsorshipType, app.Description, app.ContributionAmount,
		app.StartDate, app.Duration, app.Status, app.CreatedAt,
	).Scan(&app.ID)
}
