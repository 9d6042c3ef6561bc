package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"szarcommunity/internal/delivery/http/helpers"
	"szarcommunity/internal/delivery/http/middleware"
	"szarcommunity/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalogService implements domain.CatalogService for handler tests.
type fakeCatalogService struct {
	createErr     error
	lastCreated   *domain.Service
	getResult     *domain.Service
	getErr        error
	listResult    []*domain.Service
	listTotal     int
	listErr       error
	lastFilter    domain.ServiceFilter
	lastParams    domain.PaginationParams
	updateResult  *domain.Service
	updateErr     error
	deleteErr     error
	lastCallerID  string
	lastServiceID string
	mineResult    []*domain.Service
	mineErr       error
}

func (f *fakeCatalogService) CreateService(ctx context.Context, s *domain.Service) error {
	if f.createErr != nil {
		return f.createErr
	}
	s.ID = "svc-1"
	f.lastCreated = s
	return nil
}

func (f *fakeCatalogService) GetService(ctx context.Context, id string) (*domain.Service, error) {
	f.lastServiceID = id
	return f.getResult, f.getErr
}

func (f *fakeCatalogService) ListServices(ctx context.Context, filter domain.ServiceFilter, params domain.PaginationParams) ([]*domain.Service, int, error) {
	f.lastFilter = filter
	f.lastParams = params
	return f.listResult, f.listTotal, f.listErr
}

func (f *fakeCatalogService) ListMyServices(ctx context.Context, creatorID string) ([]*domain.Service, error) {
	f.lastCallerID = creatorID
	return f.mineResult, f.mineErr
}

func (f *fakeCatalogService) UpdateService(ctx context.Context, serviceID, callerID string, upd domain.ServiceUpdate) (*domain.Service, error) {
	f.lastServiceID = serviceID
	f.lastCallerID = callerID
	return f.updateResult, f.updateErr
}

func (f *fakeCatalogService) DeleteService(ctx context.Context, serviceID, callerID string) error {
	f.lastServiceID = serviceID
	f.lastCallerID = callerID
	return f.deleteErr
}

func authedRequest(method, target, body, userID string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if userID != "" {
		req = req.WithContext(middleware.SetUserID(req.Context(), userID))
	}
	return req
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	return envelope
}

func TestServiceController_Create(t *testing.T) {
	validBody := `{
		"title": "Tutoring Session",
		"description": "Math help",
		"category": "education",
		"location_type": "onsite",
		"location_address": "12 Main St",
		"start_date": "2026-03-02T14:00:00Z",
		"end_date": "2026-03-02T16:00:00Z"
	}`

	t.Run("creates with authenticated user as creator", func(t *testing.T) {
		svc := &fakeCatalogService{}
		ctrl := NewServiceController(testLogger, svc)
		req := authedRequest(http.MethodPost, "http://test/services", validBody, "user-1")
		rr := httptest.NewRecorder()

		ctrl.Create(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		require.NotNil(t, svc.lastCreated)
		assert.Equal(t, "user-1", svc.lastCreated.CreatedBy)
		assert.Equal(t, time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC), svc.lastCreated.StartDate)
	})

	t.Run("rejects bad dates", func(t *testing.T) {
		svc := &fakeCatalogService{}
		ctrl := NewServiceController(testLogger, svc)
		body := `{"title":"X","category":"education","location_type":"onsite","start_date":"tomorrow","end_date":"later"}`
		req := authedRequest(http.MethodPost, "http://test/services", body, "user-1")
		rr := httptest.NewRecorder()

		ctrl.Create(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		envelope := decodeEnvelope(t, rr)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeBadRequest, envelope.Error.Code)
		assert.Nil(t, svc.lastCreated)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		svc := &fakeCatalogService{}
		ctrl := NewServiceController(testLogger, svc)
		req := authedRequest(http.MethodPost, "http://test/services", validBody, "")
		rr := httptest.NewRecorder()

		ctrl.Create(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestServiceController_List(t *testing.T) {
	svc := &fakeCatalogService{
		listResult: []*domain.Service{{ID: "svc-1", Title: "Tutoring Session"}},
		listTotal:  1,
	}
	ctrl := NewServiceController(testLogger, svc)
	req := httptest.NewRequest(http.MethodGet, "http://test/services?category=education&search=tutoring&page=2&page_size=10", nil)
	rr := httptest.NewRecorder()

	ctrl.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "education", svc.lastFilter.Category)
	assert.Equal(t, "tutoring", svc.lastFilter.Search)
	assert.False(t, svc.lastFilter.IncludePast)
	assert.Equal(t, domain.PaginationParams{Page: 2, PageSize: 10}, svc.lastParams)
}

func TestServiceController_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &fakeCatalogService{getResult: &domain.Service{ID: "svc-1"}}
		ctrl := NewServiceController(testLogger, svc)
		req := httptest.NewRequest(http.MethodGet, "http://test/services/svc-1", nil)
		req.SetPathValue("serviceID", "svc-1")
		rr := httptest.NewRecorder()

		ctrl.Get(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "svc-1", svc.lastServiceID)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeCatalogService{getErr: domain.ErrNotFound}
		ctrl := NewServiceController(testLogger, svc)
		req := httptest.NewRequest(http.MethodGet, "http://test/services/missing", nil)
		req.SetPathValue("serviceID", "missing")
		rr := httptest.NewRecorder()

		ctrl.Get(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		envelope := decodeEnvelope(t, rr)
		assert.Equal(t, helpers.ErrCodeNotFound, envelope.Error.Code)
	})
}

func TestServiceController_Update_Forbidden(t *testing.T) {
	svc := &fakeCatalogService{updateErr: domain.ErrForbidden}
	ctrl := NewServiceController(testLogger, svc)
	req := authedRequest(http.MethodPatch, "http://test/services/svc-1", `{"title":"New"}`, "intruder")
	req.SetPathValue("serviceID", "svc-1")
	rr := httptest.NewRecorder()

	ctrl.Update(rr, req)

	require.Equal(t, http.StatusForbidden, rr.Code)
	envelope := decodeEnvelope(t, rr)
	assert.Equal(t, helpers.ErrCodeForbidden, envelope.Error.Code)
	assert.Equal(t, "intruder", svc.lastCallerID)
}

func TestServiceController_Delete(t *testing.T) {
	svc := &fakeCatalogService{}
	ctrl := NewServiceController(testLogger, svc)
	req := authedRequest(http.MethodDelete, "http://test/services/svc-1", "", "user-1")
	req.SetPathValue("serviceID", "svc-1")
	rr := httptest.NewRecorder()

	ctrl.Delete(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "svc-1", svc.lastServiceID)
	assert.Equal(t, "user-1", svc.lastCallerID)
}
