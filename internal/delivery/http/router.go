package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"szarcommunity/internal/delivery/http/controllers"
	"szarcommunity/internal/delivery/http/middleware"
	"szarcommunity/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	authController *controllers.AuthController,
	serviceController *controllers.ServiceController,
	enrollmentController *controllers.EnrollmentController,
	profileController *controllers.ProfileController,
	sponsorshipController *controllers.SponsorshipController,
	notificationController *controllers.NotificationController,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Service catalog
	mux.HandleFunc("GET /services", serviceController.List)
	mux.HandleFunc("POST /services", auth(serviceController.Create))
	mux.HandleFunc("GET /services/me", auth(serviceController.ListMine))
	mux.HandleFunc("GET /services/{serviceID}", serviceController.Get)
	mux.HandleFunc("PATCH /services/{serviceID}", auth(serviceController.Update))
	mux.HandleFunc("DELETE /services/{serviceID}", auth(serviceController.Delete))

	// Enrollment
	mux.HandleFunc("POST /services/{serviceID}/volunteer-applications", auth(enrollmentController.Volunteer))
	mux.HandleFunc("POST /services/{serviceID}/participant-registrations", auth(enrollmentController.Register))
	mux.HandleFunc("GET /me/volunteer-applications", auth(enrollmentController.MyApplications))
	mux.HandleFunc("GET /me/participant-registrations", auth(enrollmentController.MyRegistrations))

	// Profiles
	mux.HandleFunc("GET /profiles/me", auth(profileController.Get))
	mux.HandleFunc("PATCH /profiles/me", auth(profileController.Update))

	// Sponsorships (public form)
	mux.HandleFunc("POST /sponsorships", sponsorshipController.Submit)

	// Notification trigger
	mux.HandleFunc("POST /notifications", notificationController.Trigger)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
