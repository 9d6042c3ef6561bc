package domain

import (
	"context"
	"time"
)

// AssociationStatus is the lifecycle state of a volunteer application or
// participant registration. Only approved associations receive reminders.
type AssociationStatus string

const (
	StatusPending  AssociationStatus = "pending"
	StatusApproved AssociationStatus = "approved"
	StatusRejected AssociationStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s AssociationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// VolunteerApplication links a volunteer to a service with application details.
// swagger:model VolunteerApplication
type VolunteerApplication struct {
	ID           string            `json:"id"`
	ServiceID    string            `json:"service_id"`
	VolunteerID  string            `json:"volunteer_id"`
	Experience   string            `json:"experience"`
	Availability string            `json:"availability"`
	Motivation   string            `json:"motivation"`
	Status       AssociationStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
}

// ParticipantRegistration links a participant to a service with registration details.
// swagger:model ParticipantRegistration
type ParticipantRegistration struct {
	ID                  string            `json:"id"`
	ServiceID           string            `json:"service_id"`
	ParticipantID       string            `json:"participant_id"`
	Notes               string            `json:"notes"`
	DietaryRequirements string            `json:"dietary_requirements"`
	AccessibilityNeeds  string            `json:"accessibility_needs"`
	Status              AssociationStatus `json:"status"`
	CreatedAt           time.Time         `json:"created_at"`
}

// VolunteerApplicationRepository defines storage operations for volunteer applications.
type VolunteerApplicationRepository interface {
	Create(ctx context.Context, app *VolunteerApplication) error
	GetByServiceAndVolunteer(ctx context.Context, serviceID, volunteerID string) (*VolunteerApplication, error)
	ListByVolunteerID(ctx context.Context, volunteerID string) ([]*VolunteerApplication, error)
}

// ParticipantRegistrationRepository defines storage operations for participant registrations.
type ParticipantRegistrationRepository interface {
	Create(ctx context.Context, reg *ParticipantRegistration) error
	GetByServiceAndParticipant(ctx context.Context, serviceID, participantID string) (*ParticipantRegistration, error)
	ListByParticipantID(ctx context.Context, participantID string) ([]*ParticipantRegistration, error)
}

// VolunteerApplicationWithService bundles an application with its related service.
type VolunteerApplicationWithService struct {
	Application *VolunteerApplication `json:"application"`
	Service     *Service              `json:"service"`
}

// ParticipantRegistrationWithService bundles a registration with its related service.
type ParticipantRegistrationWithService struct {
	Registration *ParticipantRegistration `json:"registration"`
	Service      *Service                 `json:"service"`
}

// EnrollmentService defines volunteer-application and participant-registration operations.
type EnrollmentService interface {
	// ApplyAsVolunteer submits a volunteer application for the service. The
	// caller's profile is marked is_volunteer if it is not already.
	ApplyAsVolunteer(ctx context.Context, serviceID, volunteerID string, app *VolunteerApplication) (*VolunteerApplication, error)
	RegisterAsParticipant(ctx context.Context, serviceID, participantID string, reg *ParticipantRegistration) (*ParticipantRegistration, error)
	ListMyVolunteerApplications(ctx context.Context, volunteerID string) ([]*VolunteerApplicationWithService, error)
	ListMyParticipantRegistrations(ctx context.Context, participantID string) ([]*ParticipantRegistrationWithService, error)
}
