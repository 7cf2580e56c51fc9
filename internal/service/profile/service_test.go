package profile

import (
	"context"
	"testing"

	"github.com/alamex/bitacora-backend-go/internal/domain/profile"
	"github.com/alamex/bitacora-backend-go/internal/pkg/session"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmail = "ana@example.com"

type fakeSession struct{}

func (f *fakeSession) GenerateToken(s session.Session) (string, int64, error) { return "token", 0, nil }
func (f *fakeSession) JWTAuth() *jwtauth.JWTAuth                              { return nil }
func (f *fakeSession) FromContext(ctx context.Context) (session.Session, error) {
	return session.Session{Email: testEmail}, nil
}

type fakeProfileRepo struct {
	profiles map[string]profile.Profile
}

func (f *fakeProfileRepo) Create(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	p.ID = "profile-1"
	f.profiles[p.Email] = p
	return p, nil
}

func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	p, ok := f.profiles[email]
	if !ok {
		return nil, nil
	}
	prof := p
	return &prof, nil
}

type fakeRecorder struct {
	actions []string
}

func (f *fakeRecorder) Record(ctx context.Context, userEmail, action, detail string) {
	f.actions = append(f.actions, action)
}

func newFixture() (profile.ProfileService, *fakeProfileRepo, *fakeRecorder) {
	repo := &fakeProfileRepo{profiles: make(map[string]profile.Profile)}
	rec := &fakeRecorder{}
	return NewProfileService(repo, &fakeSession{}, rec), repo, rec
}

func validRequest() profile.CreateProfileRequest {
	return profile.CreateProfileRequest{
		FullName:       "Ana Lopez",
		Department:     "Sistemas",
		SupervisorName: "Luis Mora",
		EntryTime:      "09:00",
		ExitTime:       "17:00",
	}
}

func TestCreate_StoresProfileForSessionUser(t *testing.T) {
	t.Parallel()
	svc, repo, rec := newFixture()

	created, err := svc.Create(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, testEmail, created.Email)
	assert.Equal(t, "Ana Lopez", created.FullName)
	assert.Contains(t, repo.profiles, testEmail)
	assert.Equal(t, []string{"Creó Perfil"}, rec.actions)
}

func TestCreate_SecondProfileRejected(t *testing.T) {
	t.Parallel()
	svc, _, _ := newFixture()

	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, profile.ErrProfileExists)
}

func TestCreate_ValidationFailureIsAudited(t *testing.T) {
	t.Parallel()
	svc, repo, rec := newFixture()

	req := validRequest()
	req.EntryTime = "9 en punto"

	_, err := svc.Create(context.Background(), req)

	assert.Error(t, err)
	assert.Empty(t, repo.profiles)
	assert.Equal(t, []string{"Error al Crear Perfil"}, rec.actions)
}

func TestGetMine_NotConfigured(t *testing.T) {
	t.Parallel()
	svc, _, _ := newFixture()

	_, err := svc.GetMine(context.Background())

	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
}

func TestGetMine_ReturnsStoredProfile(t *testing.T) {
	t.Parallel()
	svc, _, _ := newFixture()

	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	got, err := svc.GetMine(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "09:00", got.EntryTime)
	assert.Equal(t, "17:00", got.ExitTime)
}
