package controllers

import (
	"log/slog"
	"net/http"

	"szarcommunity/internal/delivery/http/helpers"
	"szarcommunity/internal/delivery/http/middleware"
	"szarcommunity/internal/domain"
)

// UpdateProfileRequest is the request body for PATCH /profiles/me.
// Absent fields are left unchanged.
type UpdateProfileRequest struct {
	FullName    *string  `json:"full_name"`
	Bio         *string  `json:"bio"`
	Skills      []string `json:"skills"`
	IsVolunteer *bool    `json:"is_volunteer"`
}

type ProfileController struct {
	Logger  *slog.Logger
	Service domain.ProfileService
}

func NewProfileController(logger *slog.Logger, svc domain.ProfileService) *ProfileController {
	return &ProfileController{
		Logger:  logger,
		Service: svc,
	}
}

// Get godoc
// @Summary Get the caller's profile
// @Description Returns the profile, creating an empty one on first access.
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the profile"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /profiles/me [get]
func (c *ProfileController) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	p, err := c.Service.GetOrCreate(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, p)
}

// Update godoc
// @Summary Update the caller's profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data contains the updated profile"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /profiles/me [patch]
func (c *ProfileController) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	p, err := c.Service.Update(r.Context(), userID, domain.ProfileUpdate{
		FullName:    req.FullName,
		Bio:         req.Bio,
		Skills:      req.Skills,
		IsVolunteer: req.IsVolunteer,
	})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal error")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, p)
}
