package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"szarcommunity/internal/delivery/http/helpers"
	"szarcommunity/internal/delivery/http/middleware"
	"szarcommunity/internal/domain"
)

// CreateServiceRequest is the request body for POST /services.
type CreateServiceRequest struct {
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	Category             string  `json:"category"`
	Requirements         string  `json:"requirements"`
	VolunteerHoursReward int     `json:"volunteer_hours_reward"`
	MinParticipants      int     `json:"min_participants"`
	MaxParticipants      int     `json:"max_participants"`
	MinVolunteers        int     `json:"min_volunteers"`
	MaxVolunteers        int     `json:"max_volunteers"`
	StartDate            string  `json:"start_date"`
	EndDate              string  `json:"end_date"`
	IsRecurring          bool    `json:"is_recurring"`
	RecurrencePattern    string  `json:"recurrence_pattern"`
	LocationType         string  `json:"location_type"`
	LocationAddress      string  `json:"location_address"`
	LocationDetails      *string `json:"location_details"`
}

// Validate implements Validator.
func (c CreateServiceRequest) Validate() []string {
	var errs []string
	if c.Title == "" {
		errs = append(errs, "title is required")
	}
	if c.Category == "" {
		errs = append(errs, "category is required")
	}
	if c.LocationType != "onsite" && c.LocationType != "remote" && c.LocationType != "hybrid" {
		errs = append(errs, "location_type must be \"onsite\", \"remote\" or \"hybrid\"")
	}
	if _, err := time.Parse(time.RFC3339, c.StartDate); err != nil {
		errs = append(errs, "start_date must be RFC 3339")
	}
	if _, err := time.Parse(time.RFC3339, c.EndDate); err != nil {
		errs = append(errs, "end_date must be RFC 3339")
	}
	if c.MaxParticipants < 0 || c.MaxVolunteers < 0 {
		errs = append(errs, "capacity limits must not be negative")
	}
	return errs
}

// UpdateServiceRequest is the request body for PATCH /services/{serviceID}.
// Absent fields are left unchanged.
type UpdateServiceRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	Requirements    *string `json:"requirements"`
	StartDate       *string `json:"start_date"`
	EndDate         *string `json:"end_date"`
	MaxParticipants *int    `json:"max_participants"`
	MaxVolunteers   *int    `json:"max_volunteers"`
	LocationType    *string `json:"location_type"`
	LocationAddress *string `json:"location_address"`
	LocationDetails *string `json:"location_details"`
}

// Validate implements Validator.
func (u UpdateServiceRequest) Validate() []string {
	var errs []string
	if u.Title != nil && *u.Title == "" {
		errs = append(errs, "title must not be empty")
	}
	if u.StartDate != nil {
		if _, err := time.Parse(time.RFC3339, *u.StartDate); err != nil {
			errs = append(errs, "start_date must be RFC 3339")
		}
	}
	if u.EndDate != nil {
		if _, err := time.Parse(time.RFC3339, *u.EndDate); err != nil {
			errs = append(errs, "end_date must be RFC 3339")
		}
	}
	return errs
}

// ListServicesResponse is the data payload for GET /services.
type ListServicesResponse struct {
	Services   []*domain.Service      `json:"services"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

type ServiceController struct {
	Logger  *slog.Logger
	Service domain.CatalogService
}

func NewServiceController(logger *slog.Logger, svc domain.CatalogService) *ServiceController {
	return &ServiceController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *ServiceController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "service not found")
	case errors.Is(err, domain.ErrForbidden):
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "only the creator can modify this service")
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
	}
}

// Create godoc
// @Summary Create a community service
// @Description Creates a service owned by the authenticated user and sends the creation confirmation email. Email failures never fail the request.
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param service body CreateServiceRequest true "Service data"
// @Success 201 {object} helpers.APIResponse "data contains the created service"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /services [post]
func (c *ServiceController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	start, _ := time.Parse(time.RFC3339, req.StartDate)
	end, _ := time.Parse(time.RFC3339, req.EndDate)
	svc := &domain.Service{
		Title:                req.Title,
		Description:          req.Description,
		Category:             req.Category,
		Requirements:         req.Requirements,
		VolunteerHoursReward: req.VolunteerHoursReward,
		MinParticipants:      req.MinParticipants,
		MaxParticipants:      req.MaxParticipants,
		MinVolunteers:        req.MinVolunteers,
		MaxVolunteers:        req.MaxVolunteers,
		StartDate:            start,
		EndDate:              end,
		IsRecurring:          req.IsRecurring,
		RecurrencePattern:    req.RecurrencePattern,
		LocationType:         req.LocationType,
		LocationAddress:      req.LocationAddress,
		LocationDetails:      req.LocationDetails,
		CreatedBy:            userID,
	}
	if err := c.Service.CreateService(r.Context(), svc); err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, svc)
}

// List godoc
// @Summary List services
// @Description Lists upcoming services with optional category and search filters. Pass include_past=true for past services.
// @Tags services
// @Produce json
// @Param category query string false "Category filter"
// @Param search query string false "Title and description search"
// @Param include_past query bool false "List past services instead of upcoming"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} helpers.APIResponse "data contains services and pagination"
// @Router /services [get]
func (c *ServiceController) List(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	filter := domain.ServiceFilter{
		Category:    r.URL.Query().Get("category"),
		Search:      r.URL.Query().Get("search"),
		IncludePast: r.URL.Query().Get("include_past") == "true",
	}
	services, total, err := c.Service.ListServices(r.Context(), filter, params)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListServicesResponse{
		Services:   services,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// Get godoc
// @Summary Get a service by ID
// @Tags services
// @Produce json
// @Param serviceID path string true "Service ID"
// @Success 200 {object} helpers.APIResponse "data contains the service"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /services/{serviceID} [get]
func (c *ServiceController) Get(w http.ResponseWriter, r *http.Request) {
	serviceID := r.PathValue("serviceID")
	if serviceID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing serviceID")
		return
	}
	svc, err := c.Service.GetService(r.Context(), serviceID)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, svc)
}

// ListMine godoc
// @Summary List services created by the authenticated user
// @Tags services
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the user's services"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /services/me [get]
func (c *ServiceController) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	services, err := c.Service.ListMyServices(r.Context(), userID)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, services)
}

// Update godoc
// @Summary Update a service
// @Description Applies the provided fields to the service. Only the creator may update.
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param serviceID path string true "Service ID"
// @Param service body UpdateServiceRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data contains the updated service"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /services/{serviceID} [patch]
func (c *ServiceController) Update(w http.ResponseWriter, r *http.Request) {
	serviceID := r.PathValue("serviceID")
	var req UpdateServiceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	upd := domain.ServiceUpdate{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		MaxParticipants: req.MaxParticipants,
		MaxVolunteers:   req.MaxVolunteers,
		LocationType:    req.LocationType,
		LocationAddress: req.LocationAddress,
		LocationDetails: req.LocationDetails,
	}
	if req.StartDate != nil {
		start, _ := time.Parse(time.RFC3339, *req.StartDate)
		upd.StartDate = &start
	}
	if req.EndDate != nil {
		end, _ := time.Parse(time.RFC3339, *req.EndDate)
		upd.EndDate = &end
	}
	svc, err := c.Service.UpdateService(r.Context(), serviceID, userID, upd)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, svc)
}

// Delete godoc
// @Summary Delete a service
// @Description Deletes the service. Only the creator may delete.
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param serviceID path string true "Service ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /services/{serviceID} [delete]
func (c *ServiceController) Delete(w http.ResponseWriter, r *http.Request) {
	serviceID := r.PathValue("serviceID")
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.DeleteService(r.Context(), serviceID, userID); err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"deleted": serviceID})
}
