package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"szarcommunity/internal/domain"
)

type sponsorshipService struct {
	sponsorshipRepo domain.SponsorshipRepository
	contextTimeout  time.Duration
}

func NewSponsorshipService(sponsorshipRepo domain.SponsorshipRepository, timeout time.Duration) domain.SponsorshipService {
	return &sponsorshipService{
		sponsorshipRepo: sponsorshipRepo,
		contextTimeout:  timeout,
	}
}

func (s *sponsorshipService) Submit(ctx context.Context, app *domain.SponsorshipApplication) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(app.OrganizationName) == "" {
		return fmt.Errorf("%w: organization name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(app.Email) == "" {
		return fmt.Errorf("%w: contact email is required", domain.ErrInvalidInput)
	}
	switch app.SponsorshipType {
	case domain.SponsorshipEvent, domain.SponsorshipCampaign, domain.SponsorshipAnnual, domain.SponsorshipInKind:
	default:
		return fmt.Errorf("%w: unknown sponsorship type %q", domain.ErrInvalidInput, app.SponsorshipType)
	}

	app.Status = domain.StatusPending
	app.CreatedAt = time.Now()
	return s.sponsorshipRepo.Create(ctx, app)
}
