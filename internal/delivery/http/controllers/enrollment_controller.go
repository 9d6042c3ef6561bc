package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"szarcommunity/internal/delivery/http/helpers"
	"szarcommunity/internal/delivery/http/middleware"
	"szarcommunity/internal/domain"
)

// VolunteerApplicationRequest is the request body for POST /services/{serviceID}/volunteer-applications.
type VolunteerApplicationRequest struct {
	Experience   string `json:"experience"`
	Availability string `json:"availability"`
	Motivation   string `json:"motivation"`
}

// Validate implements Validator.
func (v VolunteerApplicationRequest) Validate() []string {
	var errs []string
	if v.Motivation == "" {
		errs = append(errs, "motivation is required")
	}
	return errs
}

// ParticipantRegistrationRequest is the request body for POST /services/{serviceID}/participant-registrations.
type ParticipantRegistrationRequest struct {
	Notes               string `json:"notes"`
	DietaryRequirements string `json:"dietary_requirements"`
	AccessibilityNeeds  string `json:"accessibility_needs"`
}

type EnrollmentController struct {
	Logger  *slog.Logger
	Service domain.EnrollmentService
}

func NewEnrollmentController(logger *slog.Logger, svc domain.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *EnrollmentController) writeEnrollmentError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "service not found")
	case errors.Is(err, domain.ErrAlreadyApplied):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "you have already applied to this service")
	case errors.Is(err, domain.ErrAlreadyRegistered):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "you are already registered for this service")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}

// Volunteer godoc
// @Summary Apply to a service as a volunteer
// @Description Creates a pending volunteer application and marks the caller's profile as a volunteer.
// @Tags enrollment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param serviceID path string true "Service ID"
// @Param application body VolunteerApplicationRequest true "Application details"
// @Success 201 {object} helpers.APIResponse "data contains the application"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /services/{serviceID}/volunteer-applications [post]
func (c *EnrollmentController) Volunteer(w http.ResponseWriter, r *http.Request) {
	serviceID := r.PathValue("serviceID")
	var req VolunteerApplicationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	app, err := c.Service.ApplyAsVolunteer(r.Context(), serviceID, userID, &domain.VolunteerApplication{
		Experience:   req.Experience,
		Availability: req.Availability,
		Motivation:   req.Motivation,
	})
	if err != nil {
		c.writeEnrollmentError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, app)
}

// Register godoc
// @Summary Register for a service as a participant
// @Description Creates a pending participant registration.
// @Tags enrollment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param serviceID path string true "Service ID"
// @Param registration body ParticipantRegistrationRequest true "Registration details"
// @Success 201 {object} helpers.APIResponse "data contains the registration"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /services/{serviceID}/participant-registrations [post]
func (c *EnrollmentController) Register(w http.ResponseWriter, r *http.Request) {
	serviceID := r.PathValue("serviceID")
	var req ParticipantRegistrationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	reg, err := c.Service.RegisterAsParticipant(r.Context(), serviceID, userID, &domain.ParticipantRegistration{
		Notes:               req.Notes,
		DietaryRequirements: req.DietaryRequirements,
		AccessibilityNeeds:  req.AccessibilityNeeds,
	})
	if err != nil {
		c.writeEnrollmentError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// MyApplications godoc
// @Summary List the caller's volunteer applications
// @Tags enrollment
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains applications with their services"
// @Router /me/volunteer-applications [get]
func (c *EnrollmentController) MyApplications(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	apps, err := c.Service.ListMyVolunteerApplications(r.Context(), userID)
	if err != nil {
		c.writeEnrollmentError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, apps)
}

// MyRegistrations godoc
// @Summary List the caller's participant registrations
// @Tags enrollment
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains registrations with their services"
// @Router /me/participant-registrations [get]
func (c *EnrollmentController) MyRegistrations(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	regs, err := c.Service.ListMyParticipantRegistrations(r.Context(), userID)
	if err != nil {
		c.writeEnrollmentError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, regs)
}
