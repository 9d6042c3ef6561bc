package domain

import (
	"context"
	"time"
)

// Sponsorship types accepted on the public sponsorship form.
const (
	SponsorshipEvent    = "event"
	SponsorshipCampaign = "campaign"
	SponsorshipAnnual   = "annual"
	SponsorshipInKind   = "in_kind"
)

// SponsorshipApplication is a submission from the public sponsorship form.
// Amount, start date, and duration are free-form strings as entered.
// swagger:model SponsorshipApplication
type SponsorshipApplication struct {
	ID                 string            `json:"id"`
	OrganizationName   string            `json:"organization_name"`
	ContactName        string            `json:"contact_name"`
	Email              string            `json:"email"`
	Phone              string            `json:"phone"`
	SponsorshipType    string            `json:"sponsorship_type"`
	Description        string            `json:"description"`
	ContributionAmount string            `json:"contribution_amount"`
	StartDate          string            `json:"start_date"`
	Duration           string            `json:"duration"`
	Status             AssociationStatus `json:"status"`
	CreatedAt          time.Time         `json:"created_at"`
}

// SponsorshipRepository defines storage operations for sponsorship applications.
type SponsorshipRepository interface {
	Create(ctx context.Context, app *SponsorshipApplication) error
}

// SponsorshipService defines the business logic for sponsorship submissions.
type SponsorshipService interface {
	Submit(ctx context.Context, app *SponsorshipApplication) error
}
