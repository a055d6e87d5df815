package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpathai/backend/pkg/user"
)

func newProtectedApp(t *testing.T) (*fiber.App, *string) {
	t.Helper()
	var seenUserID string
	app := fiber.New()
	app.Get("/protected", NewAuthMiddleware("test-secret", "careerpath-api"), func(c *fiber.Ctx) error {
		seenUserID, _ = c.Locals("userId").(string)
		return c.SendStatus(http.StatusOK)
	})
	return app, &seenUserID
}

func TestAuthMiddleware(t *testing.T) {
	gen := NewGenerator("test-secret", "careerpath-api", time.Hour)
	u := user.User{ID: uuid.New()}
	token, err := gen.Generate(context.Background(), u)
	require.NoError(t, err)

	foreign, err := NewGenerator("test-secret", "another-service", time.Hour).Generate(context.Background(), u)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"wrong issuer", "Bearer " + foreign, http.StatusUnauthorized},
		{"bearer prefix", "Bearer " + token, http.StatusOK},
		{"bare token", token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, seen := newProtectedApp(t)
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, u.ID.String(), *seen)
			}
		})
	}
}
