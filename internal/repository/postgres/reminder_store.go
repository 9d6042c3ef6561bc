package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"szarcommunity/internal/domain"
)

type reminderStore struct {
	DB *sql.DB
}

func NewReminderStore(db *sql.DB) domain.ReminderStore {
	return &reminderStore{
		DB: db,
	}
}

// ListServicesStartingBetween returns every service whose start_date falls
// inside [from, to], inclusive on both ends, together with its approved
// volunteer applications and participant registrations. Services without
// approved associations are still returned with empty slices.
func (r *reminderStore) ListServicesStartingBetween(ctx context.Context, from, to time.Time) ([]*domain.ServiceReminders, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE start_date >= $1 AND start_date <= $2 ORDER BY start_date ASC`
	rows, err := r.DB.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reminders := make([]*domain.ServiceReminders, 0)
	byID := make(map[string]*domain.ServiceReminders)
	ids := make([]string, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		sr := &domain.ServiceReminders{
			Service:                  s,
			VolunteerApplications:    make([]*domain.VolunteerApplication, 0),
			ParticipantRegistrations: make([]*domain.ParticipantRegistration, 0),
		}
		reminders = append(reminders, sr)
		byID[s.ID] = sr
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return reminders, nil
	}

	if err := r.loadApprovedVolunteers(ctx, ids, byID); err != nil {
		return nil, err
	}
	if err := r.loadApprovedParticipants(ctx, ids, byID); err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderStore) loadApprovedVolunteers(ctx context.Context, ids []string, byID map[string]*domain.ServiceReminders) error {
	query := `
		SELECT id, service_id, volunteer_id, experience, availability, motivation, status, created_at
		FROM volunteer_applications
		WHERE service_id = ANY($1) AND status = $2
	`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids), domain.StatusApproved)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		a := &domain.VolunteerApplication{}
		err := rows.Scan(&a.ID, &a.ServiceID, &a.VolunteerID, &a.Experience,
			&a.Availability, &a.Motivation, &a.Status, &a.CreatedAt)
		if err != nil {
			return err
		}
		if sr, ok := byID[a.ServiceID]; ok {
			sr.VolunteerApplications = append(sr.VolunteerApplications, a)
		}
	}
	return rows.Err()
}

func (r *reminderStore) loadApprovedParticipants(ctx context.Context, ids []string, byID map[string]*domain.ServiceReminders) error {
	query := `
		SELECT id, service_id, participant_id, notes, dietary_requirements, accessibility_needs, status, created_at
		FROM participant_registrations
		WHERE service_id = ANY($1) AND status = $2
	`
	rows, err := r.DB.QueryContext(ctx, query, pq.Array(ids), domain.StatusApproved)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		reg := &domain.ParticipantRegistration{}
		err := rows.Scan(&reg.ID, &reg.ServiceID, &reg.ParticipantID, &reg.Notes,
			&reg.DietaryRequirements, &reg.AccessibilityNeeds, &reg.Status, &reg.CreatedAt)
		if err != nil {
			return err
		}
		if sr, ok := byID[reg.ServiceID]; ok {
			sr.ParticipantRegistrations = append(sr.ParticipantRegistrations, reg)
		}
	}
	return rows.Err()
}
