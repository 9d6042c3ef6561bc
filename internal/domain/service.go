package domain

import (
	"context"
	"time"
)

// Service represents a schedulable community-service event: a time window,
// a location, and capacity limits for volunteers and participants.
// swagger:model Service
type Service struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Category             string    `json:"category"`
	Requirements         string    `json:"requirements"`
	VolunteerHoursReward int       `json:"volunteer_hours_reward"`
	MinParticipants      int       `json:"min_participants"`
	MaxParticipants      int       `json:"max_participants"`
	MinVolunteers        int       `json:"min_volunteers"`
	MaxVolunteers        int       `json:"max_volunteers"`
	StartDate            time.Time `json:"start_date"`
	EndDate              time.Time `json:"end_date"`
	IsRecurring          bool      `json:"is_recurring"`
	RecurrencePattern    string    `json:"recurrence_pattern"`
	LocationType         string    `json:"location_type"`
	LocationAddress      string    `json:"location_address"`
	LocationDetails      *string   `json:"location_details"`
	CreatedBy            string    `json:"created_by"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// ServiceFilter narrows catalog listings. Zero value lists upcoming services.
type ServiceFilter struct {
	Category    string
	Search      string
	IncludePast bool
}

// ServiceUpdate carries the optional fields of a service update; nil fields are unchanged.
type ServiceUpdate struct {
	Title           *string
	Description     *string
	Requirements    *string
	StartDate       *time.Time
	EndDate         *time.Time
	MaxParticipants *int
	MaxVolunteers   *int
	LocationType    *string
	LocationAddress *string
	LocationDetails *string
}

// ServiceRepository defines storage operations for services.
type ServiceRepository interface {
	Create(ctx context.Context, s *Service) error
	GetByID(ctx context.Context, id string) (*Service, error)
	List(ctx context.Context, filter ServiceFilter, now time.Time, params PaginationParams) ([]*Service, int, error)
	ListByCreator(ctx context.Context, creatorID string) ([]*Service, error)
	Update(ctx context.Context, id string, upd ServiceUpdate) (*Service, error)
	Delete(ctx context.Context, id string) error
}

// CatalogService defines the business logic for browsing and managing services.
type CatalogService interface {
	CreateService(ctx context.Context, s *Service) error
	GetService(ctx context.Context, id string) (*Service, error)
	ListServices(ctx context.Context, filter ServiceFilter, params PaginationParams) ([]*Service, int, error)
	ListMyServices(ctx context.Context, creatorID string) ([]*Service, error)
	UpdateService(ctx context.Context, serviceID, callerID string, upd ServiceUpdate) (*Service, error)
	DeleteService(ctx context.Context, serviceID, callerID string) error
}
