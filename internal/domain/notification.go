package domain

import (
	"context"
	"time"
)

// Trigger discriminants accepted by the notification endpoint.
const (
	TriggerEventCreated     = "EVENT_CREATED"
	TriggerProcessReminders = "PROCESS_REMINDERS"
)

// ServiceReminders is a service joined with its approved associations for
// the reminder fan-out. Repositories return only approved rows here.
type ServiceReminders struct {
	Service                  *Service
	VolunteerApplications    []*VolunteerApplication
	ParticipantRegistrations []*ParticipantRegistration
}

// ReminderStore fetches services starting within a window together with
// their approved associations. Both bounds are inclusive.
type ReminderStore interface {
	ListServicesStartingBetween(ctx context.Context, from, to time.Time) ([]*ServiceReminders, error)
}

// ReminderSummary reports the outcome of one reminder invocation.
type ReminderSummary struct {
	EventsProcessed  int `json:"events_processed"`
	RemindersSent    int `json:"reminders_sent"`
	RemindersSkipped int `json:"reminders_skipped"`
	RemindersFailed  int `json:"reminders_failed"`
}

// NotificationService defines the notification core: the day-before reminder
// fan-out and the single creation confirmation.
type NotificationService interface {
	// ProcessReminders sends one reminder per (service, approved recipient)
	// pair for services starting tomorrow relative to now. Per-recipient
	// failures are isolated; only a store failure aborts the invocation.
	ProcessReminders(ctx context.Context, now time.Time) (*ReminderSummary, error)
	// NotifyEventCreated sends exactly one confirmation to the creator of s.
	// Returns ErrNoEmailFound when the directory has no address for the creator.
	NotifyEventCreated(ctx context.Context, s *Service) error
}
