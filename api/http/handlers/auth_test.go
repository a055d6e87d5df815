package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpathai/backend/pkg/auth"
	"github.com/careerpathai/backend/pkg/user"
)

type fakeAuthUseCase struct {
	registerResult auth.Result
	registerErr    error
	loginResult    auth.Result
	loginErr       error
	settingsErr    error
	me             user.User
}

func (f *fakeAuthUseCase) Register(_ context.Context, _, _, _ string) (auth.Result, error) {
	return f.registerResult, f.registerErr
}

func (f *fakeAuthUseCase) Login(_ context.Context, _, _ string) (auth.Result, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeAuthUseCase) Me(_ context.Context, _ uuid.UUID) (user.User, error) {
	return f.me, nil
}

func (f *fakeAuthUseCase) UpdateProfile(_ context.Context, _ uuid.UUID, _ auth.ProfileUpdate) (user.User, error) {
	return f.me, nil
}

func (f *fakeAuthUseCase) UpdateSettings(_ context.Context, _ uuid.UUID, _ user.Settings) (user.User, error) {
	return f.me, f.settingsErr
}

func newAuthApp(uc auth.UseCase, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	h := NewAuthHandler(uc)
	app.Post("/api/v1/auth/register", h.Register)
	app.Post("/api/v1/auth/login", h.Login)
	app.Get("/api/v1/auth/me", stubAuth(userID), h.Me)
	app.Put("/api/v1/auth/settings", stubAuth(userID), h.UpdateSettings)
	return app
}

func TestRegisterHandler(t *testing.T) {
	account := user.User{ID: uuid.New(), Email: "alex@example.com", FullName: "Alex Rivera"}
	uc := &fakeAuthUseCase{registerResult: auth.Result{User: account, Token: "signed-token"}}
	app := newAuthApp(uc, account.ID)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/auth/register",
		`{"email": "alex@example.com", "password": "s3cret-pass", "full_name": "Alex Rivera"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "signed-token", body["token"])
	u, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alex@example.com", u["email"])
	assert.NotContains(t, u, "PasswordHash")
}

func TestRegisterHandler_Duplicate(t *testing.T) {
	uc := &fakeAuthUseCase{registerErr: user.ErrAlreadyExists}
	app := newAuthApp(uc, uuid.New())

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/auth/register",
		`{"email": "alex@example.com", "password": "s3cret-pass", "full_name": "Alex Rivera"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "email already registered", decodeBody(t, resp)["message"])
}

func TestRegisterHandler_MissingFields(t *testing.T) {
	app := newAuthApp(&fakeAuthUseCase{}, uuid.New())

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/auth/register",
		`{"email": "alex@example.com", "password": ""}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginHandler(t *testing.T) {
	account := user.User{ID: uuid.New(), Email: "alex@example.com"}
	uc := &fakeAuthUseCase{loginResult: auth.Result{User: account, Token: "signed-token"}}
	app := newAuthApp(uc, account.ID)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/auth/login",
		`{"email": "alex@example.com", "password": "s3cret-pass"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "signed-token", decodeBody(t, resp)["token"])
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	uc := &fakeAuthUseCase{loginErr: auth.ErrInvalidCredentials}
	app := newAuthApp(uc, uuid.New())

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/v1/auth/login",
		`{"email": "alex@example.com", "password": "wrong"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "invalid credentials", decodeBody(t, resp)["message"])
}

func TestUpdateSettingsHandler_Invalid(t *testing.T) {
	uc := &fakeAuthUseCase{settingsErr: auth.ErrInvalidSettings}
	app := newAuthApp(uc, uuid.New())

	resp, err := app.Test(jsonRequest(http.MethodPut, "/api/v1/auth/settings",
		`{"email_notifications": true, "reminder_frequency": "hourly", "theme": "light"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
