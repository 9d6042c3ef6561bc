package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"szarcommunity/internal/domain"
)

type enrollmentService struct {
	serviceRepo      domain.ServiceRepository
	applicationRepo  domain.VolunteerApplicationRepository
	registrationRepo domain.ParticipantRegistrationRepository
	profileRepo      domain.ProfileRepository
	logger           *slog.Logger
	contextTimeout   time.Duration
}

func NewEnrollmentService(
	serviceRepo domain.ServiceRepository,
	applicationRepo domain.VolunteerApplicationRepository,
	registrationRepo domain.ParticipantRegistrationRepository,
	profileRepo domain.ProfileRepository,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EnrollmentService {
	return &enrollmentService{
		serviceRepo:      serviceRepo,
		applicationRepo:  applicationRepo,
		registrationRepo: registrationRepo,
		profileRepo:      profileRepo,
		logger:           logger,
		contextTimeout:   timeout,
	}
}

func (s *enrollmentService) ApplyAsVolunteer(ctx context.Context, serviceID, volunteerID string, app *domain.VolunteerApplication) (*domain.VolunteerApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.serviceRepo.GetByID(ctx, serviceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	if _, err := s.applicationRepo.GetByServiceAndVolunteer(ctx, serviceID, volunteerID); err == nil {
		return nil, domain.ErrAlreadyApplied
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing application: %w", err)
	}

	app.ServiceID = serviceID
	app.VolunteerID = volunteerID
	app.Status = domain.StatusPending
	app.CreatedAt = time.Now()
	if err := s.applicationRepo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	// First application makes the user a volunteer; a missing profile row
	// is fine, the profile is created lazily on first profile access.
	if err := s.profileRepo.MarkVolunteer(ctx, volunteerID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Warn("failed to mark profile as volunteer", "user_id", volunteerID, "error", err)
	}
	return app, nil
}

func (s *enrollmentService) RegisterAsParticipant(ctx context.Context, serviceID, participantID string, reg *domain.ParticipantRegistration) (*domain.ParticipantRegistration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.serviceRepo.GetByID(ctx, serviceID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	if _, err := s.registrationRepo.GetByServiceAndParticipant(ctx, serviceID, participantID); err == nil {
		return nil, domain.ErrAlreadyRegistered
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check existing registration: %w", err)
	}

	reg.ServiceID = serviceID
	reg.ParticipantID = participantID
	reg.Status = domain.StatusPending
	reg.CreatedAt = time.Now()
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}
	return reg, nil
}

func (s *enrollmentService) ListMyVolunteerApplications(ctx context.Context, volunteerID string) ([]*domain.VolunteerApplicationWithService, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	apps, err := s.applicationRepo.ListByVolunteerID(ctx, volunteerID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	out := make([]*domain.VolunteerApplicationWithService, 0, len(apps))
	for _, app := range apps {
		svc, err := s.serviceRepo.GetByID(ctx, app.ServiceID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Service was deleted after the application; keep the
				// application visible without its service.
				out = append(out, &domain.VolunteerApplicationWithService{Application: app})
				continue
			}
			return nil, fmt.Errorf("get service %s: %w", app.ServiceID, err)
		}
		out = append(out, &domain.VolunteerApplicationWithService{Application: app, Service: svc})
	}
	return out, nil
}

func (s *enrollmentService) ListMyParticipantRegistrations(ctx context.Context, participantID string) ([]*domain.ParticipantRegistrationWithService, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	regs, err := s.registrationRepo.ListByParticipantID(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	out := make([]*domain.ParticipantRegistrationWithService, 0, len(regs))
	for _, reg := range regs {
		svc, err := s.serviceRepo.GetByID(ctx, reg.ServiceID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				out = append(out, &domain.ParticipantRegistrationWithService{Registration: reg})
				continue
			}
			return nil, fmt.Errorf("get service %s: %w", reg.ServiceID, err)
		}
		out = append(out, &domain.ParticipantRegistrationWithService{Registration: reg, Service: svc})
	}
	return out, nil
}
