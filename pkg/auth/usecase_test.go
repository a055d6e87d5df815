package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/careerpathai/backend/pkg/user"
)

type fakeUserRepo struct {
	user.Repository
	byEmail map[string]user.User
	byID    map[uuid.UUID]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]user.User{}, byID: map[uuid.UUID]user.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return user.ErrAlreadyExists
	}
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	u := f.byID[id]
	u.LastLogin = &at
	f.byID[id] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) UpdateFullName(_ context.Context, id uuid.UUID, name string) error {
	u := f.byID[id]
	u.FullName = name
	f.byID[id] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id uuid.UUID, p user.Profile) error {
	u := f.byID[id]
	u.Profile = p
	f.byID[id] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) UpdateSettings(_ context.Context, id uuid.UUID, s user.Settings) error {
	u := f.byID[id]
	u.Settings = s
	f.byID[id] = u
	f.byEmail[u.Email] = u
	return nil
}

type fakeTokens struct{}

func (fakeTokens) Generate(_ context.Context, _ user.User) (string, error) {
	return "test-token", nil
}

func newAuthService(repo *fakeUserRepo) UseCase {
	return NewService(repo, fakeTokens{}, nil, zap.NewNop())
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	res, err := svc.Register(context.Background(), "  Alex@Example.COM ", "s3cret-pass", "Alex Rivera")
	require.NoError(t, err)

	assert.Equal(t, "alex@example.com", res.User.Email)
	assert.Equal(t, "test-token", res.Token)
	assert.Equal(t, 1, res.User.Level)
	assert.Equal(t, user.DefaultSettings(), res.User.Settings)
	assert.NotNil(t, res.User.Badges)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(res.User.PasswordHash), []byte("s3cret-pass")))

	_, err = svc.Register(context.Background(), "alex@example.com", "other-pass", "Someone Else")
	assert.ErrorIs(t, err, user.ErrAlreadyExists)
}

func TestRegister_RejectsBlankFields(t *testing.T) {
	svc := newAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "pass", "Name")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Register(ctx, "a@b.c", "", "Name")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Register(ctx, "a@b.c", "pass", "   ")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)
	_, err := svc.Register(context.Background(), "alex@example.com", "s3cret-pass", "Alex Rivera")
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), "ALEX@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "test-token", res.Token)
	assert.NotNil(t, res.User.LastLogin, "successful login stamps last_login")

	_, err = svc.Login(context.Background(), "alex@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown accounts get the same error as bad passwords.
	_, err = svc.Login(context.Background(), "ghost@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateSettings_Validation(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)
	res, err := svc.Register(context.Background(), "alex@example.com", "s3cret-pass", "Alex Rivera")
	require.NoError(t, err)

	tests := []struct {
		name    string
		set     user.Settings
		wantErr error
	}{
		{"valid", user.Settings{EmailNotifications: false, ReminderFrequency: "daily", Theme: "dark"}, nil},
		{"bad theme", user.Settings{ReminderFrequency: "daily", Theme: "blue"}, ErrInvalidSettings},
		{"bad frequency", user.Settings{ReminderFrequency: "hourly", Theme: "light"}, ErrInvalidSettings},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := svc.UpdateSettings(context.Background(), res.User.ID, tt.set)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.set, u.Settings)
		})
	}
}

func TestUpdateProfile_PartialMerge(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newAuthService(repo)
	res, err := svc.Register(context.Background(), "alex@example.com", "s3cret-pass", "Alex Rivera")
	require.NoError(t, err)

	_, err = svc.UpdateProfile(context.Background(), res.User.ID, ProfileUpdate{
		Bio:         "Analyst moving into data science.",
		CurrentRole: "Financial Analyst",
		Skills:      []string{"Excel", "SQL"},
	})
	require.NoError(t, err)

	// A later partial edit must not wipe the fields it omits.
	u, err := svc.UpdateProfile(context.Background(), res.User.ID, ProfileUpdate{
		FullName:   "Alexandra Rivera",
		TargetRole: "Data Scientist",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alexandra Rivera", u.FullName)
	assert.Equal(t, "Analyst moving into data science.", u.Profile.Bio)
	assert.Equal(t, "Financial Analyst", u.Profile.CurrentRole)
	assert.Equal(t, "Data Scientist", u.Profile.TargetRole)
	assert.Equal(t, []string{"Excel", "SQL"}, u.Profile.Skills)
}
