package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RecipientRole labels which association table produced a reminder recipient.
type RecipientRole string

const (
	RoleVolunteer   RecipientRole = "volunteer"
	RoleParticipant RecipientRole = "participant"
)

// EventEmailData is the shared template payload for event emails: both the
// creation confirmation and the reminder render the same service facts.
type EventEmailData struct {
	Title           string
	Description     string
	Date            string
	Time            string
	LocationAddress string
	LocationDetails string
}

// NewEventEmailData formats a service for email templates in the given zone.
func NewEventEmailData(s *Service, loc *time.Location) EventEmailData {
	start := s.StartDate.In(loc)
	data := EventEmailData{
		Title:           s.Title,
		Description:     s.Description,
		Date:            start.Format("Monday, January 2, 2006"),
		Time:            start.Format("3:04 PM"),
		LocationAddress: s.LocationAddress,
	}
	if s.LocationDetails != nil {
		data.LocationDetails = *s.LocationDetails
	}
	return data
}

// EventCreatedEmailData holds data for the creation confirmation email.
type EventCreatedEmailData struct {
	Email string
	Event EventEmailData
}

// EventReminderEmailData holds data for the day-before reminder email.
type EventReminderEmailData struct {
	Email         string
	RecipientName string
	Role          RecipientRole
	Event         EventEmailData
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendEventCreated(ctx context.Context, data *EventCreatedEmailData) error
	SendEventReminder(ctx context.Context, data *EventReminderEmailData) error
}
