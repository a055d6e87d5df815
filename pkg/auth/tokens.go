package auth

import (
	"context"

	"github.com/careerpathai/backend/pkg/user"
)

// TokenGenerator abstracts token creation (e.g., JWT).
// It allows use cases to stay framework-agnostic.
type TokenGenerator interface {
	Generate(ctx context.Context, u user.User) (string, error)
}

// Mailer abstracts outbound account mail (welcome, reminders).
type Mailer interface {
	SendWelcome(ctx context.Context, email, name string) error
}
