package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"szarcommunity/internal/domain"

	"github.com/stretchr/testify/require"
)

type fakeVolunteerAppRepo struct {
	apps   []*domain.VolunteerApplication
	nextID int
}

func (f *fakeVolunteerAppRepo) Create(ctx context.Context, app *domain.VolunteerApplication) error {
	f.nextID++
	app.ID = fmt.Sprintf("va-%d", f.nextID)
	f.apps = append(f.apps, app)
	return nil
}

func (f *fakeVolunteerAppRepo) GetByServiceAndVolunteer(ctx context.Context, serviceID, volunteerID string) (*domain.VolunteerApplication, error) {
	for _, a := range f.apps {
		if a.ServiceID == serviceID && a.VolunteerID == volunteerID {
			return a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeVolunteerAppRepo) ListByVolunteerID(ctx context.Context, volunteerID string) ([]*domain.VolunteerApplication, error) {
	var out []*domain.VolunteerApplication
	for _, a := range f.apps {
		if a.VolunteerID == volunteerID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeParticipantRegRepo struct {
	regs   []*domain.ParticipantRegistration
	nextID int
}

func (f *fakeParticipantRegRepo) Create(ctx context.Context, reg *domain.ParticipantRegistration) error {
	f.nextID++
	reg.ID = fmt.Sprintf("pr-%d", f.nextID)
	f.regs = append(f.regs, reg)
	return nil
}

func (f *fakeParticipantRegRepo) GetByServiceAndParticipant(ctx context.Context, serviceID, participantID string) (*domain.ParticipantRegistration, error) {
	for _, r := range f.regs {
		if r.ServiceID == serviceID && r.ParticipantID == participantID {
			return r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeParticipantRegRepo) ListByParticipantID(ctx context.Context, participantID string) ([]*domain.ParticipantRegistration, error) {
	var out []*domain.ParticipantRegistration
	for _, r := range f.regs {
		if r.ParticipantID == participantID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeProfileRepo struct {
	byID map[string]*domain.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byID: make(map[string]*domain.Profile)}
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProfileRepo) Update(ctx context.Context, id string, upd domain.ProfileUpdate) (*domain.Profile, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.FullName != nil {
		p.FullName = *upd.FullName
	}
	if upd.Bio != nil {
		p.Bio = *upd.Bio
	}
	if upd.Skills != nil {
		p.Skills = upd.Skills
	}
	if upd.IsVolunteer != nil {
		p.IsVolunteer = *upd.IsVolunteer
	}
	return p, nil
}

func (f *fakeProfileRepo) MarkVolunteer(ctx context.Context, id string) error {
	p, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.IsVolunteer = true
	return nil
}

func newEnrollmentFixture(t *testing.T) (domain.EnrollmentService, *fakeServiceRepo, *fakeVolunteerAppRepo, *fakeParticipantRegRepo, *fakeProfileRepo) {
	t.Helper()
	serviceRepo := newFakeServiceRepo()
	appRepo := &fakeVolunteerAppRepo{}
	regRepo := &fakeParticipantRegRepo{}
	profileRepo := newFakeProfileRepo()
	svc := NewEnrollmentService(serviceRepo, appRepo, regRepo, profileRepo, testLogger(), time.Second)
	return svc, serviceRepo, appRepo, regRepo, profileRepo
}

func TestEnrollmentService_ApplyAsVolunteer(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending application and marks profile", func(t *testing.T) {
		svc, serviceRepo, _, _, profileRepo := newEnrollmentFixture(t)
		s := validService()
		require.NoError(t, serviceRepo.Create(ctx, s))
		profileRepo.byID["vol-1"] = &domain.Profile{ID: "vol-1"}

		app, err := svc.ApplyAsVolunteer(ctx, s.ID, "vol-1", &domain.VolunteerApplication{
			Experience: "two seasons", Availability: "weekends", Motivation: "give back",
		})
		require.NoError(t, err)
		require.Equal(t, domain.StatusPending, app.Status)
		require.Equal(t, s.ID, app.ServiceID)
		require.True(t, profileRepo.byID["vol-1"].IsVolunteer)
	})

	t.Run("duplicate application", func(t *testing.T) {
		svc, serviceRepo, _, _, _ := newEnrollmentFixture(t)
		s := validService()
		require.NoError(t, serviceRepo.Create(ctx, s))

		_, err := svc.ApplyAsVolunteer(ctx, s.ID, "vol-1", &domain.VolunteerApplication{})
		require.NoError(t, err)
		_, err = svc.ApplyAsVolunteer(ctx, s.ID, "vol-1", &domain.VolunteerApplication{})
		require.ErrorIs(t, err, domain.ErrAlreadyApplied)
	})

	t.Run("unknown service", func(t *testing.T) {
		svc, _, _, _, _ := newEnrollmentFixture(t)
		_, err := svc.ApplyAsVolunteer(ctx, "missing", "vol-1", &domain.VolunteerApplication{})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("missing profile does not fail the application", func(t *testing.T) {
		svc, serviceRepo, _, _, _ := newEnrollmentFixture(t)
		s := validService()
		require.NoError(t, serviceRepo.Create(ctx, s))

		app, err := svc.ApplyAsVolunteer(ctx, s.ID, "vol-no-profile", &domain.VolunteerApplication{})
		require.NoError(t, err)
		require.NotEmpty(t, app.ID)
	})
}

func TestEnrollmentService_RegisterAsParticipant(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending registration", func(t *testing.T) {
		svc, serviceRepo, _, _, _ := newEnrollmentFixture(t)
		s := validService()
		require.NoError(t, serviceRepo.Create(ctx, s))

		reg, err := svc.RegisterAsParticipant(ctx, s.ID, "part-1", &domain.ParticipantRegistration{
			DietaryRequirements: "vegan",
		})
		require.NoError(t, err)
		require.Equal(t, domain.StatusPending, reg.Status)
		require.Equal(t, "part-1", reg.ParticipantID)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		svc, serviceRepo, _, _, _ := newEnrollmentFixture(t)
		s := validService()
		require.NoError(t, serviceRepo.Create(ctx, s))

		_, err := svc.RegisterAsParticipant(ctx, s.ID, "part-1", &domain.ParticipantRegistration{})
		require.NoError(t, err)
		_, err = svc.RegisterAsParticipant(ctx, s.ID, "part-1", &domain.ParticipantRegistration{})
		require.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	})
}

func TestEnrollmentService_ListMyVolunteerApplications(t *testing.T) {
	ctx := context.Background()
	svc, serviceRepo, appRepo, _, _ := newEnrollmentFixture(t)
	s := validService()
	require.NoError(t, serviceRepo.Create(ctx, s))
	_, err := svc.ApplyAsVolunteer(ctx, s.ID, "vol-1", &domain.VolunteerApplication{})
	require.NoError(t, err)

	// Application whose service was deleted stays listed without a service.
	appRepo.apps = append(appRepo.apps, &domain.VolunteerApplication{
		ID: "va-orphan", ServiceID: "gone", VolunteerID: "vol-1", Status: domain.StatusApproved,
	})

	got, err := svc.ListMyVolunteerApplications(ctx, "vol-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].Service)
	require.Nil(t, got[1].Service)
}
