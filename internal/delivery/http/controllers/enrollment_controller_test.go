package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"szarcommunity/internal/delivery/http/helpers"
	"szarcommunity/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEnrollmentService implements domain.EnrollmentService for handler tests.
type fakeEnrollmentService struct {
	applyErr          error
	lastApplication   *domain.VolunteerApplication
	registerErr       error
	lastRegistration  *domain.ParticipantRegistration
	lastServiceID     string
	lastUserID        string
	applicationsList  []*domain.VolunteerApplicationWithService
	registrationsList []*domain.ParticipantRegistrationWithService
}

func (f *fakeEnrollmentService) ApplyAsVolunteer(ctx context.Context, serviceID, volunteerID string, app *domain.VolunteerApplication) (*domain.VolunteerApplication, error) {
	f.lastServiceID = serviceID
	f.lastUserID = volunteerID
	if f.applyErr != nil {
		return nil, f.applyErr
	}
	app.ID = "va-1"
	app.ServiceID = serviceID
	app.VolunteerID = volunteerID
	app.Status = domain.StatusPending
	f.lastApplication = app
	return app, nil
}

func (f *fakeEnrollmentService) RegisterAsParticipant(ctx context.Context, serviceID, participantID string, reg *domain.ParticipantRegistration) (*domain.ParticipantRegistration, error) {
	f.lastServiceID = serviceID
	f.lastUserID = participantID
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	reg.ID = "pr-1"
	reg.Status = domain.StatusPending
	f.lastRegistration = reg
	return reg, nil
}

func (f *fakeEnrollmentService) ListMyVolunteerApplications(ctx context.Context, volunteerID string) ([]*domain.VolunteerApplicationWithService, error) {
	f.lastUserID = volunteerID
	return f.applicationsList, nil
}

func (f *fakeEnrollmentService) ListMyParticipantRegistrations(ctx context.Context, participantID string) ([]*domain.ParticipantRegistrationWithService, error) {
	f.lastUserID = participantID
	return f.registrationsList, nil
}

func TestEnrollmentController_Volunteer(t *testing.T) {
	t.Run("creates pending application", func(t *testing.T) {
		svc := &fakeEnrollmentService{}
		ctrl := NewEnrollmentController(testLogger, svc)
		body := `{"experience":"two seasons","availability":"weekends","motivation":"give back"}`
		req := authedRequest(http.MethodPost, "http://test/services/svc-1/volunteer", body, "vol-1")
		req.SetPathValue("serviceID", "svc-1")
		rr := httptest.NewRecorder()

		ctrl.Volunteer(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "svc-1", svc.lastServiceID)
		assert.Equal(t, "vol-1", svc.lastUserID)
		assert.Equal(t, "give back", svc.lastApplication.Motivation)
	})

	t.Run("missing motivation", func(t *testing.T) {
		svc := &fakeEnrollmentService{}
		ctrl := NewEnrollmentController(testLogger, svc)
		req := authedRequest(http.MethodPost, "http://test/services/svc-1/volunteer", `{}`, "vol-1")
		req.SetPathValue("serviceID", "svc-1")
		rr := httptest.NewRecorder()

		ctrl.Volunteer(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Nil(t, svc.lastApplication)
	})

	t.Run("duplicate maps to conflict", func(t *testing.T) {
		svc := &fakeEnrollmentService{applyErr: domain.ErrAlreadyApplied}
		ctrl := NewEnrollmentController(testLogger, svc)
		body := `{"motivation":"give back"}`
		req := authedRequest(http.MethodPost, "http://test/services/svc-1/volunteer", body, "vol-1")
		req.SetPathValue("serviceID", "svc-1")
		rr := httptest.NewRecorder()

		ctrl.Volunteer(rr, req)

		require.Equal(t, http.StatusConflict, rr.Code)
		envelope := decodeEnvelope(t, rr)
		assert.Equal(t, helpers.ErrCodeConflict, envelope.Error.Code)
	})
}

func TestEnrollmentController_Register(t *testing.T) {
	t.Run("creates pending registration", func(t *testing.T) {
		svc := &fakeEnrollmentService{}
		ctrl := NewEnrollmentController(testLogger, svc)
		body := `{"dietary_requirements":"vegan"}`
		req := authedRequest(http.MethodPost, "http://test/services/svc-1/register", body, "part-1")
		req.SetPathValue("serviceID", "svc-1")
		rr := httptest.NewRecorder()

		ctrl.Register(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "vegan", svc.lastRegistration.DietaryRequirements)
	})

	t.Run("unknown service", func(t *testing.T) {
		svc := &fakeEnrollmentService{registerErr: domain.ErrNotFound}
		ctrl := NewEnrollmentController(testLogger, svc)
		req := authedRequest(http.MethodPost, "http://test/services/missing/register", `{}`, "part-1")
		req.SetPathValue("serviceID", "missing")
		rr := httptest.NewRecorder()

		ctrl.Register(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestEnrollmentController_MyApplications(t *testing.T) {
	svc := &fakeEnrollmentService{
		applicationsList: []*domain.VolunteerApplicationWithService{
			{Application: &domain.VolunteerApplication{ID: "va-1"}},
		},
	}
	ctrl := NewEnrollmentController(testLogger, svc)
	req := authedRequest(http.MethodGet, "http://test/me/volunteer-applications", "", "vol-1")
	rr := httptest.NewRecorder()

	ctrl.MyApplications(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "vol-1", svc.lastUserID)
}
