package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"szarcommunity/internal/domain"
)

type catalogService struct {
	serviceRepo    domain.ServiceRepository
	notifications  domain.NotificationService
	logger         *slog.Logger
	contextTimeout time.Duration
}

func NewCatalogService(
	serviceRepo domain.ServiceRepository,
	notifications domain.NotificationService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.CatalogService {
	return &catalogService{
		serviceRepo:    serviceRepo,
		notifications:  notifications,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *catalogService) CreateService(ctx context.Context, svc *domain.Service) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if svc.CreatedBy == "" {
		return fmt.Errorf("%w: service creator is required", domain.ErrInvalidInput)
	}
	if svc.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if svc.EndDate.Before(svc.StartDate) {
		return fmt.Errorf("%w: end date precedes start date", domain.ErrInvalidInput)
	}

	svc.CreatedAt = time.Now()
	svc.UpdatedAt = time.Now()
	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return fmt.Errorf("create service: %w", err)
	}

	// Confirmation email failures never fail the creation itself.
	if err := s.notifications.NotifyEventCreated(ctx, svc); err != nil {
		s.logger.Warn("failed to send creation confirmation",
			"service_id", svc.ID, "creator_id", svc.CreatedBy, "error", err)
	}
	return nil
}

func (s *catalogService) GetService(ctx context.Context, id string) (*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.serviceRepo.GetByID(ctx, id)
}

func (s *catalogService) ListServices(ctx context.Context, filter domain.ServiceFilter, params domain.PaginationParams) ([]*domain.Service, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.serviceRepo.List(ctx, filter, time.Now(), params)
}

func (s *catalogService) ListMyServices(ctx context.Context, creatorID string) ([]*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.serviceRepo.ListByCreator(ctx, creatorID)
}

func (s *catalogService) UpdateService(ctx context.Context, serviceID, callerID string, upd domain.ServiceUpdate) (*domain.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	if existing.CreatedBy != callerID {
		return nil, domain.ErrForbidden
	}
	return s.serviceRepo.Update(ctx, serviceID, upd)
}

func (s *catalogService) DeleteService(ctx context.Context, serviceID, callerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get service: %w", err)
	}
	if existing.CreatedBy != callerID {
		return domain.ErrForbidden
	}
	return s.serviceRepo.Delete(ctx, serviceID)
}
