package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"szarcommunity/config"
	_ "szarcommunity/docs"
	"szarcommunity/internal/adapters/auth"
	"szarcommunity/internal/adapters/email"
	delivery "szarcommunity/internal/delivery/http"
	"szarcommunity/internal/delivery/http/controllers"
	"szarcommunity/internal/delivery/http/middleware"
	"szarcommunity/internal/repository/postgres"
	"szarcommunity/internal/scheduler"
	"szarcommunity/internal/services"
)

const serviceTimeout = 10 * time.Second

// @title Szar Community API
// @version 1.0
// @description Community services platform: service catalog, volunteer and participant enrollment, sponsorships, and event email notifications.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	loc, err := time.LoadLocation(cfg.ReminderTimezone)
	if err != nil {
		logger.Error("invalid reminder timezone", "zone", cfg.ReminderTimezone, "error", err)
		os.Exit(1)
	}

	// Repositories
	serviceRepo := postgres.NewServiceRepository(db)
	applicationRepo := postgres.NewVolunteerApplicationRepository(db)
	registrationRepo := postgres.NewParticipantRegistrationRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	sponsorshipRepo := postgres.NewSponsorshipRepository(db)
	userRepo := postgres.NewUserRepository(db)
	reminderStore := postgres.NewReminderStore(db)
	directory := postgres.NewIdentityDirectory(db)

	// Adapters
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "error", err)
		os.Exit(1)
	}
	renderer := email.NewTemplateRenderer()
	hasher := auth.NewBcryptHasher(0)
	issuer := auth.NewJWTIssuer(cfg.JWTSecret)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	// Services
	emailService := services.NewEmailService(mailer, renderer)
	notificationService := services.NewNotificationService(reminderStore, directory, emailService, loc, logger, serviceTimeout)
	catalogService := services.NewCatalogService(serviceRepo, notificationService, logger, serviceTimeout)
	enrollmentService := services.NewEnrollmentService(serviceRepo, applicationRepo, registrationRepo, profileRepo, logger, serviceTimeout)
	profileService := services.NewProfileService(profileRepo, serviceTimeout)
	sponsorshipService := services.NewSponsorshipService(sponsorshipRepo, serviceTimeout)
	authService := services.NewAuthService(userRepo, hasher, issuer, cfg.JWTExpiry, serviceTimeout)

	// Controllers
	authController := controllers.NewAuthController(logger, authService)
	serviceController := controllers.NewServiceController(logger, catalogService)
	enrollmentController := controllers.NewEnrollmentController(logger, enrollmentService)
	profileController := controllers.NewProfileController(logger, profileService)
	sponsorshipController := controllers.NewSponsorshipController(logger, sponsorshipService)
	notificationController := controllers.NewNotificationController(logger, notificationService)

	mux := delivery.NewRouter(
		logger, verifier,
		authController, serviceController, enrollmentController,
		profileController, sponsorshipController, notificationController,
	)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, mux))

	sched := scheduler.New(notificationService, loc, logger)
	if err := sched.Start(cfg.ReminderCron); err != nil {
		logger.Error("failed to start reminder scheduler", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
		}
		sched.Stop()
	}
}
