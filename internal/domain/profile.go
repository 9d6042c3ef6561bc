package domain

import (
	"context"
	"time"
)

// Profile holds the public-facing details of a user. The profile ID equals
// the owning user's ID.
// swagger:model Profile
type Profile struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	Bio            string    `json:"bio"`
	Skills         []string  `json:"skills"`
	VolunteerHours int       `json:"volunteer_hours"`
	IsVolunteer    bool      `json:"is_volunteer"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProfileUpdate carries the optional fields of a profile update; nil fields are unchanged.
type ProfileUpdate struct {
	FullName    *string
	Bio         *string
	Skills      []string
	IsVolunteer *bool
}

// ProfileRepository defines storage operations for profiles.
type ProfileRepository interface {
	Create(ctx context.Context, p *Profile) error
	GetByID(ctx context.Context, id string) (*Profile, error)
	Update(ctx context.Context, id string, upd ProfileUpdate) (*Profile, error)
	MarkVolunteer(ctx context.Context, id string) error
}

// ProfileService defines profile management operations.
type ProfileService interface {
	// GetOrCreate returns the user's profile, creating an empty one on first access.
	GetOrCreate(ctx context.Context, userID string) (*Profile, error)
	Update(ctx context.Context, userID string, upd ProfileUpdate) (*Profile, error)
}

// Contact is a resolved recipient: the address and display name for a person ID.
type Contact struct {
	Email    string
	FullName string
}

// IdentityDirectory resolves a person identifier to contact details.
// An empty Email on a nil-error result means the person has no resolvable
// address and must be skipped, not treated as a failure.
type IdentityDirectory interface {
	Resolve(ctx context.Context, personID string) (*Contact, error)
}
