package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"szarcommunity/internal/domain"
)

// Scheduler runs the reminder fan-out on a cron schedule. The HTTP trigger
// endpoint stays available for manual runs; both paths share the same
// NotificationService, which serializes overlapping runs itself.
type Scheduler struct {
	cron          *cron.Cron
	notifications domain.NotificationService
	logger        *slog.Logger
}

func New(notifications domain.NotificationService, loc *time.Location, logger *slog.Logger) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		cron:          cron.New(cron.WithLocation(loc)),
		notifications: notifications,
		logger:        logger,
	}
}

// Start registers the reminder job under the given five-field cron spec and
// starts the scheduler in its own goroutine.
func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, s.runReminders)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("reminder scheduler started", "cron", spec)
	return nil
}

// Stop stops scheduling new runs and waits for an in-flight run to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runReminders() {
	summary, err := s.notifications.ProcessReminders(context.Background(), time.Now())
	if err != nil {
		s.logger.Error("scheduled reminder run failed", "error", err)
		return
	}
	s.logger.Info("scheduled reminder run finished",
		"events_processed", summary.EventsProcessed,
		"reminders_sent", summary.RemindersSent,
		"reminders_skipped", summary.RemindersSkipped,
		"reminders_failed", summary.RemindersFailed,
	)
}
