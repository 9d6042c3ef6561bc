package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"szarcommunity/internal/domain"
)

type notificationService struct {
	store          domain.ReminderStore
	directory      domain.IdentityDirectory
	emailService   domain.EmailService
	loc            *time.Location
	logger         *slog.Logger
	contextTimeout time.Duration

	// mu serializes reminder runs within this process so overlapping
	// triggers cannot interleave their fan-outs.
	mu sync.Mutex
}

func NewNotificationService(
	store domain.ReminderStore,
	directory domain.IdentityDirectory,
	emailService domain.EmailService,
	loc *time.Location,
	logger *slog.Logger,
	timeout time.Duration,
) domain.NotificationService {
	if loc == nil {
		loc = time.UTC
	}
	return &notificationService{
		store:          store,
		directory:      directory,
		emailService:   emailService,
		loc:            loc,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// reminderWindow returns the inclusive bounds of "tomorrow" relative to now
// in the service's reference zone: the day's first instant through its last
// representable instant before the following midnight.
func (s *notificationService) reminderWindow(now time.Time) (from, to time.Time) {
	tomorrow := now.In(s.loc).AddDate(0, 0, 1)
	from = time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, s.loc)
	to = from.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return from, to
}

func (s *notificationService) ProcessReminders(ctx context.Context, now time.Time) (*domain.ReminderSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	runID := uuid.NewString()
	from, to := s.reminderWindow(now)
	log := s.logger.With("run_id", runID)
	log.Info("processing reminders", "window_from", from, "window_to", to)

	services, err := s.store.ListServicesStartingBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: list services starting between %s and %s: %v",
			domain.ErrStoreUnavailable, from.Format(time.RFC3339), to.Format(time.RFC3339), err)
	}

	summary := &domain.ReminderSummary{}
	for _, sr := range services {
		summary.EventsProcessed++
		event := domain.NewEventEmailData(sr.Service, s.loc)
		for _, app := range sr.VolunteerApplications {
			s.sendReminder(ctx, log, summary, sr.Service.ID, app.VolunteerID, domain.RoleVolunteer, event)
		}
		for _, reg := range sr.ParticipantRegistrations {
			s.sendReminder(ctx, log, summary, sr.Service.ID, reg.ParticipantID, domain.RoleParticipant, event)
		}
	}
	log.Info("reminders processed",
		"events_processed", summary.EventsProcessed,
		"reminders_sent", summary.RemindersSent,
		"reminders_skipped", summary.RemindersSkipped,
		"reminders_failed", summary.RemindersFailed,
	)
	return summary, nil
}

// sendReminder resolves one recipient and dispatches a single reminder.
// Failures are recorded on the summary, never returned, so one bad
// recipient cannot stop the rest of the fan-out.
func (s *notificationService) sendReminder(
	ctx context.Context,
	log *slog.Logger,
	summary *domain.ReminderSummary,
	serviceID, personID string,
	role domain.RecipientRole,
	event domain.EventEmailData,
) {
	// An unresolvable recipient is skipped, like one without an email
	// address; only a dispatch error counts as failed.
	contact, err := s.directory.Resolve(ctx, personID)
	if err != nil {
		summary.RemindersSkipped++
		log.Warn("failed to resolve reminder recipient",
			"service_id", serviceID, "person_id", personID, "role", role, "error", err)
		return
	}
	if contact.Email == "" {
		summary.RemindersSkipped++
		log.Warn("no email found for reminder recipient",
			"service_id", serviceID, "person_id", personID, "role", role)
		return
	}
	data := &domain.EventReminderEmailData{
		Email:         contact.Email,
		RecipientName: contact.FullName,
		Role:          role,
		Event:         event,
	}
	if err := s.emailService.SendEventReminder(ctx, data); err != nil {
		summary.RemindersFailed++
		log.Error("failed to send reminder",
			"service_id", serviceID, "person_id", personID, "role", role, "error", err)
		return
	}
	summary.RemindersSent++
}

func (s *notificationService) NotifyEventCreated(ctx context.Context, svc *domain.Service) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	contact, err := s.directory.Resolve(ctx, svc.CreatedBy)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNoEmailFound
		}
		return fmt.Errorf("resolve creator %s: %w", svc.CreatedBy, err)
	}
	if contact.Email == "" {
		return domain.ErrNoEmailFound
	}
	data := &domain.EventCreatedEmailData{
		Email: contact.Email,
		Event: domain.NewEventEmailData(svc, s.loc),
	}
	if err := s.emailService.SendEventCreated(ctx, data); err != nil {
		return fmt.Errorf("send event created email: %w", err)
	}
	return nil
}
