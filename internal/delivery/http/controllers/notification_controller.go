package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"szarcommunity/internal/domain"
)

// TriggerEventPayload is the event carried by an EVENT_CREATED trigger.
// It mirrors the service record so the mailer does not have to refetch it.
type TriggerEventPayload struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	LocationAddress string    `json:"location_address"`
	LocationDetails *string   `json:"location_details"`
	CreatedBy       string    `json:"created_by"`
}

// TriggerRequest is the request body for POST /notifications.
type TriggerRequest struct {
	Type  string               `json:"type"`
	Event *TriggerEventPayload `json:"event"`
}

// TriggerResponse is the response body for POST /notifications.
type TriggerResponse struct {
	Success bool                    `json:"success,omitempty"`
	Message string                  `json:"message,omitempty"`
	Summary *domain.ReminderSummary `json:"summary,omitempty"`
	Error   string                  `json:"error,omitempty"`
}

type NotificationController struct {
	Logger  *slog.Logger
	Service domain.NotificationService
}

func NewNotificationController(logger *slog.Logger, svc domain.NotificationService) *NotificationController {
	return &NotificationController{
		Logger:  logger,
		Service: svc,
	}
}

func writeTrigger(w http.ResponseWriter, statusCode int, resp TriggerResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

// Trigger godoc
// @Summary Trigger a notification run
// @Description Dispatches either a single event-creation confirmation (type EVENT_CREATED, event required) or the day-before reminder fan-out (type PROCESS_REMINDERS). Unknown types are rejected with 400.
// @Tags notifications
// @Accept json
// @Produce json
// @Param trigger body TriggerRequest true "Trigger type and, for EVENT_CREATED, the event"
// @Success 200 {object} TriggerResponse
// @Failure 400 {object} TriggerResponse "error: Invalid event type"
// @Failure 404 {object} TriggerResponse "error: No email found for event creator"
// @Failure 500 {object} TriggerResponse "error: Internal server error"
// @Router /notifications [post]
func (c *NotificationController) Trigger(w http.ResponseWriter, r *http.Request) {
	var req TriggerRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		writeTrigger(w, http.StatusBadRequest, TriggerResponse{Error: "Invalid request body"})
		return
	}

	switch req.Type {
	case domain.TriggerEventCreated:
		c.triggerEventCreated(w, r, req.Event)
	case domain.TriggerProcessReminders:
		c.triggerProcessReminders(w, r)
	default:
		writeTrigger(w, http.StatusBadRequest, TriggerResponse{Error: "Invalid event type"})
	}
}

func (c *NotificationController) triggerEventCreated(w http.ResponseWriter, r *http.Request, payload *TriggerEventPayload) {
	if payload == nil || payload.CreatedBy == "" {
		writeTrigger(w, http.StatusBadRequest, TriggerResponse{Error: "Event with creator is required"})
		return
	}
	svc := &domain.Service{
		ID:              payload.ID,
		Title:           payload.Title,
		Description:     payload.Description,
		StartDate:       payload.StartDate,
		EndDate:         payload.EndDate,
		LocationAddress: payload.LocationAddress,
		LocationDetails: payload.LocationDetails,
		CreatedBy:       payload.CreatedBy,
	}
	if err := c.Service.NotifyEventCreated(r.Context(), svc); err != nil {
		if errors.Is(err, domain.ErrNoEmailFound) {
			writeTrigger(w, http.StatusNotFound, TriggerResponse{Error: "No email found for event creator"})
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		writeTrigger(w, http.StatusInternalServerError, TriggerResponse{Error: "Internal server error"})
		return
	}
	writeTrigger(w, http.StatusOK, TriggerResponse{
		Success: true,
		Message: "Confirmation email sent successfully",
	})
}

func (c *NotificationController) triggerProcessReminders(w http.ResponseWriter, r *http.Request) {
	summary, err := c.Service.ProcessReminders(r.Context(), time.Now())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		writeTrigger(w, http.StatusInternalServerError, TriggerResponse{Error: "Internal server error"})
		return
	}
	writeTrigger(w, http.StatusOK, TriggerResponse{
		Success: true,
		Message: "Reminders processed successfully",
		Summary: summary,
	})
}
