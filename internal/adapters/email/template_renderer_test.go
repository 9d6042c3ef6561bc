package email

import (
	"testing"

	"szarcommunity/internal/domain"

	"github.com/stretchr/testify/require"
)

func reminderData(title string) *domain.EventReminderEmailData {
	return &domain.EventReminderEmailData{
		Email:         "v1@example.com",
		RecipientName: "Alex",
		Role:          domain.RoleVolunteer,
		Event: domain.EventEmailData{
			Title:           title,
			Description:     "Math help for grade 8",
			Date:            "Monday, March 2, 2026",
			Time:            "2:00 PM",
			LocationAddress: "12 Main St",
		},
	}
}

func TestTemplateRenderer_EventReminder(t *testing.T) {
	r := NewTemplateRenderer()

	subject, html, text, err := r.Render("event_reminder", reminderData("Tutoring Session"))
	require.NoError(t, err)
	require.Equal(t, "Reminder: Tutoring Session Tomorrow", subject)
	require.Contains(t, html, "Hello Alex")
	require.Contains(t, html, "registered as a volunteer")
	require.Contains(t, html, "Tutoring Session")
	require.NotContains(t, html, "Location Details:")
	require.Contains(t, text, "Date: Monday, March 2, 2026")
	require.Contains(t, text, "Time: 2:00 PM")
}

func TestTemplateRenderer_EventReminder_LocationDetails(t *testing.T) {
	r := NewTemplateRenderer()

	data := reminderData("Tutoring Session")
	data.Event.LocationDetails = "Room 204, second floor"
	_, html, text, err := r.Render("event_reminder", data)
	require.NoError(t, err)
	require.Contains(t, html, "Room 204, second floor")
	require.Contains(t, text, "Location Details: Room 204, second floor")
}

func TestTemplateRenderer_EventReminder_NoName(t *testing.T) {
	r := NewTemplateRenderer()

	data := reminderData("Tutoring Session")
	data.RecipientName = ""
	_, html, _, err := r.Render("event_reminder", data)
	require.NoError(t, err)
	require.Contains(t, html, "Hello there")
}

func TestTemplateRenderer_EventCreated(t *testing.T) {
	r := NewTemplateRenderer()

	data := &domain.EventCreatedEmailData{
		Email: "creator@example.com",
		Event: domain.EventEmailData{
			Title:           "Food Drive",
			Description:     "Collecting non-perishables",
			Date:            "Tuesday, March 3, 2026",
			Time:            "10:00 AM",
			LocationAddress: "Community Hall",
		},
	}
	subject, html, text, err := r.Render("event_created", data)
	require.NoError(t, err)
	require.Equal(t, "Event Created Successfully", subject)
	require.Contains(t, html, "Food Drive")
	require.Contains(t, text, "Your event has been created!")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r := NewTemplateRenderer()

	_, _, _, err := r.Render("no_such_template", nil)
	require.Error(t, err)
}
