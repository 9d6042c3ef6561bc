package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"szarcommunity/internal/delivery/http/helpers"
	"szarcommunity/internal/domain"
)

// SponsorshipRequest is the request body for POST /sponsorships.
// The form is public; no authentication is required.
type SponsorshipRequest struct {
	OrganizationName   string `json:"organization_name"`
	ContactName        string `json:"contact_name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	SponsorshipType    string `json:"sponsorship_type"`
	Description        string `json:"description"`
	ContributionAmount string `json:"contribution_amount"`
	StartDate          string `json:"start_date"`
	Duration           string `json:"duration"`
}

// Validate implements Validator.
func (s SponsorshipRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(s.OrganizationName) == "" {
		errs = append(errs, "organization_name is required")
	}
	if strings.TrimSpace(s.Email) == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(strings.TrimSpace(s.Email)) {
		errs = append(errs, "invalid email format")
	}
	if s.SponsorshipType == "" {
		errs = append(errs, "sponsorship_type is required")
	}
	return errs
}

type SponsorshipController struct {
	Logger  *slog.Logger
	Service domain.SponsorshipService
}

func NewSponsorshipController(logger *slog.Logger, svc domain.SponsorshipService) *SponsorshipController {
	return &SponsorshipController{
		Logger:  logger,
		Service: svc,
	}
}

// Submit godoc
// @Summary Submit a sponsorship application
// @Description Stores a pending sponsorship application from the public form.
// @Tags sponsorships
// @Accept json
// @Produce json
// @Param application body SponsorshipRequest true "Application details"
// @Success 201 {object} helpers.APIResponse "data contains the stored application"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /sponsorships [post]
func (c *SponsorshipController) Submit(w http.ResponseWriter, r *http.Request) {
	var req SponsorshipRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	app := &domain.SponsorshipApplication{
		OrganizationName:   req.OrganizationName,
		ContactName:        req.ContactName,
		Email:              req.Email,
		Phone:              req.Phone,
		SponsorshipType:    req.SponsorshipType,
		Description:        req.Description,
		ContributionAmount: req.ContributionAmount,
		StartDate:          req.StartDate,
		Duration:           req.Duration,
	}
	if err := c.Service.Submit(r.Context(), app); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, app)
}
