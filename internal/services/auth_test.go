package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"szarcommunity/internal/domain"

	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// fakeHasher "hashes" by concatenation so comparisons stay readable.
type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }

func (fakeHasher) Hash(salt, password string) (string, error) {
	return salt + ":" + password, nil
}

func (fakeHasher) Compare(hash, salt, password string) error {
	if hash != salt+":"+password {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

type fakeIssuer struct{}

func (fakeIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	return "token-" + userID, nil
}

func newAuthFixture() domain.AuthService {
	return NewAuthService(newFakeUserRepo(), fakeHasher{}, fakeIssuer{}, time.Hour, time.Second)
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with normalized email", func(t *testing.T) {
		svc := newAuthFixture()
		u, err := svc.SignUp(ctx, "  Person@Example.COM ", "longenough")
		require.NoError(t, err)
		require.Equal(t, "person@example.com", u.Email)
		require.NotEmpty(t, u.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := newAuthFixture()
		_, err := svc.SignUp(ctx, "person@example.com", "longenough")
		require.NoError(t, err)
		_, err = svc.SignUp(ctx, "person@example.com", "longenough")
		require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})

	t.Run("short password", func(t *testing.T) {
		svc := newAuthFixture()
		_, err := svc.SignUp(ctx, "person@example.com", "short")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("invalid email", func(t *testing.T) {
		svc := newAuthFixture()
		_, err := svc.SignUp(ctx, "not-an-email", "longenough")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc := newAuthFixture()
	u, err := svc.SignUp(ctx, "person@example.com", "longenough")
	require.NoError(t, err)

	t.Run("issues token", func(t *testing.T) {
		token, err := svc.Login(ctx, "person@example.com", "longenough")
		require.NoError(t, err)
		require.Equal(t, "token-"+u.ID, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "person@example.com", "wrong")
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "ghost@example.com", "longenough")
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestProfileService_GetOrCreate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo, time.Second)

	p, err := svc.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, "user-1", p.ID)
	require.NotNil(t, p.Skills)

	again, err := svc.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	require.Same(t, p, again)
}

func TestProfileService_Update(t *testing.T) {
	ctx := context.Background()
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo, time.Second)

	name := "Dana"
	p, err := svc.Update(ctx, "user-1", domain.ProfileUpdate{FullName: &name})
	require.NoError(t, err)
	require.Equal(t, "Dana", p.FullName)
}

func TestSponsorshipService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("valid submission is stored pending", func(t *testing.T) {
		repo := &fakeSponsorshipRepo{}
		svc := NewSponsorshipService(repo, time.Second)
		app := &domain.SponsorshipApplication{
			OrganizationName: "Acme Foods",
			ContactName:      "Dana",
			Email:            "sponsor@acme.example",
			SponsorshipType:  domain.SponsorshipEvent,
		}
		require.NoError(t, svc.Submit(ctx, app))
		require.Equal(t, domain.StatusPending, app.Status)
		require.Len(t, repo.apps, 1)
	})

	t.Run("unknown type", func(t *testing.T) {
		svc := NewSponsorshipService(&fakeSponsorshipRepo{}, time.Second)
		app := &domain.SponsorshipApplication{
			OrganizationName: "Acme Foods",
			Email:            "sponsor@acme.example",
			SponsorshipType:  "lifetime",
		}
		require.ErrorIs(t, svc.Submit(ctx, app), domain.ErrInvalidInput)
	})

	t.Run("missing organization", func(t *testing.T) {
		svc := NewSponsorshipService(&fakeSponsorshipRepo{}, time.Second)
		app := &domain.SponsorshipApplication{
			Email:           "sponsor@acme.example",
			SponsorshipType: domain.SponsorshipEvent,
		}
		require.ErrorIs(t, svc.Submit(ctx, app), domain.ErrInvalidInput)
	})
}

type fakeSponsorshipRepo struct {
	apps []*domain.SponsorshipApplication
}

func (f *fakeSponsorshipRepo) Create(ctx context.Context, app *domain.SponsorshipApplication) error {
	f.apps = append(f.apps, app)
	return nil
}
