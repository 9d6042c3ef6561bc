package postgres

import (
	"context"
	"database/sql"
	"errors"

	"szarcommunity/internal/domain"
)

type participantRegistrationRepository struct {
	DB *sql.DB
}

func NewParticipantRegistrationRepository(db *sql.DB) domain.ParticipantRegistrationRepository {
	return &participantRegistrationRepository{
		DB: db,
	}
}

func (r *participantRegistrationRepository) Create(ctx context.Context, reg *domain.ParticipantRegistration) error {
	query := `
		INSERT INTO participant_registrations (service_id, participant_id, notes, dietary_requirements, accessibility_needs, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		reg.ServiceID, reg.ParticipantID, reg.Notes, reg.DietaryRequirements,
		reg.AccessibilityNeeds, reg.Status, reg.CreatedAt,
	).Scan(&reg.ID)
}

func (r *participantRegistrationRepository) GetByServiceAndParticipant(ctx context.Context, serviceID, participantID string) (*domain.ParticipantRegistration, error) {
	query := `
		SELECT id, service_id, participant_id, notes, dietary_requirements, accessibility_needs, status, created_at
		FROM participant_registrations
		WHERE service_id = $1 AND participant_id = $2
	`
	reg := &domain.ParticipantRegistration{}
	err := r.DB.QueryRowContext(ctx, query, serviceID, participantID).Scan(
		&reg.ID, &reg.ServiceID, &reg.ParticipantID, &reg.Notes,
		&reg.DietaryRequirements, &reg.AccessibilityNeeds, &reg.Status, &reg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *participantRegistrationRepository) ListByParticipantID(ctx context.Context, participantID string) ([]*domain.ParticipantRegistration, error) {
	query := `
		SELECT id, service_id, participant_id, notes, dietary_requirements, accessibility_needs, status, created_at
		FROM participant_registrations
		WHERE participant_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, participantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	regs := make([]*domain.ParticipantRegistration, 0)
	for rows.Next() {
		reg := &domain.ParticipantRegistration{}
		err := rows.Scan(&reg.ID, &reg.ServiceID, &reg.ParticipantID, &reg.Notes,
			&reg.DietaryRequirements, &reg.AccessibilityNeeds, &reg.Status, &reg.CreatedAt)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}
