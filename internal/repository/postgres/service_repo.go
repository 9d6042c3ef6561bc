package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"szarcommunity/internal/domain"
)

const serviceColumns = `id, title, description, category, requirements,
		volunteer_hours_reward, min_participants, max_participants,
		min_volunteers, max_volunteers, start_date, end_date,
		is_recurring, recurrence_pattern, location_type, location_address,
		location_details, created_by, created_at, updated_at`

type serviceRepository struct {
	DB *sql.DB
}

func NewServiceRepository(db *sql.DB) domain.ServiceRepository {
	return &serviceRepository{
		DB: db,
	}
}

// scanService scans one row of serviceColumns into a domain.Service.
func scanService(row interface{ Scan(...any) error }) (*domain.Service, error) {
	s := &domain.Service{}
	var detailsNull sql.NullString
	err := row.Scan(
		&s.ID, &s.Title, &s.Description, &s.Category, &s.Requirements,
		&s.VolunteerHoursReward, &s.MinParticipants, &s.MaxParticipants,
		&s.MinVolunteers, &s.MaxVolunteers, &s.StartDate, &s.EndDate,
		&s.IsRecurring, &s.RecurrencePattern, &s.LocationType, &s.LocationAddress,
		&detailsNull, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if detailsNull.Valid {
		s.LocationDetails = &detailsNull.String
	}
	return s, nil
}

func (r *serviceRepository) Create(ctx context.Context, s *domain.Service) error {
	query := `
		INSERT INTO services (title, description, category, requirements,
			volunteer_hours_reward, min_participants, max_participants,
			min_volunteers, max_volunteers, start_date, end_date,
			is_recurring, recurrence_pattern, location_type, location_address,
			location_details, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id
	`
	var details sql.NullString
	if s.LocationDetails != nil {
		details = sql.NullString{String: *s.LocationDetails, Valid: true}
	}
	return r.DB.QueryRowContext(ctx, query,
		s.Title, s.Description, s.Category, s.Requirements,
		s.VolunteerHoursReward, s.MinParticipants, s.MaxParticipants,
		s.MinVolunteers, s.MaxVolunteers, s.StartDate, s.EndDate,
		s.IsRecurring, s.RecurrencePattern, s.LocationType, s.LocationAddress,
		details, s.CreatedBy, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`
	s, err := scanService(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *serviceRepository) List(ctx context.Context, filter domain.ServiceFilter, now time.Time, params domain.PaginationParams) ([]*domain.Service, int, error) {
	where := []string{}
	args := []any{}
	n := 1
	if filter.IncludePast {
		where = append(where, fmt.Sprintf("start_date < $%d", n))
	} else {
		where = append(where, fmt.Sprintf("start_date >= $%d", n))
	}
	args = append(args, now)
	n++
	if filter.Category != "" {
		where = append(where, fmt.Sprintf("category = $%d", n))
		args = append(args, filter.Category)
		n++
	}
	if filter.Search != "" {
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
		args = append(args, "%"+filter.Search+"%")
		n++
	}
	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM services WHERE ` + whereClause
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT `+serviceColumns+` FROM services WHERE %s ORDER BY start_date ASC LIMIT $%d OFFSET $%d`,
		whereClause, n, n+1)
	args = append(args, params.PageSize, params.Offset())
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	services := make([]*domain.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, 0, err
		}
		services = append(services, s)
	}
	return services, total, rows.Err()
}

func (r *serviceRepository) ListByCreator(ctx context.Context, creatorID string) ([]*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE created_by = $1 ORDER BY start_date ASC`
	rows, err := r.DB.QueryContext(ctx, query, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	services := make([]*domain.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *serviceRepository) Update(ctx context.Context, id string, upd domain.ServiceUpdate) (*domain.Service, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []any{}
	n := 1
	addSet := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}
	if upd.Title != nil {
		addSet("title", *upd.Title)
	}
	if upd.Description != nil {
		addSet("description", *upd.Description)
	}
	if upd.Requirements != nil {
		addSet("requirements", *upd.Requirements)
	}
	if upd.StartDate != nil {
		addSet("start_date", *upd.StartDate)
	}
	if upd.EndDate != nil {
		addSet("end_date", *upd.EndDate)
	}
	if upd.MaxParticipants != nil {
		addSet("max_participants", *upd.MaxParticipants)
	}
	if upd.MaxVolunteers != nil {
		addSet("max_volunteers", *upd.MaxVolunteers)
	}
	if upd.LocationType != nil {
		addSet("location_type", *upd.LocationType)
	}
	if upd.LocationAddress != nil {
		addSet("location_address", *upd.LocationAddress)
	}
	if upd.LocationDetails != nil {
		addSet("location_details", *upd.LocationDetails)
	}
	if n == 1 {
		// No fields to update; just fetch current row
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE services SET %s WHERE id = $%d RETURNING `+serviceColumns,
		strings.Join(setClauses, ", "), n)
	s, err := scanService(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *serviceRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM services WHERE id = $1`
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
