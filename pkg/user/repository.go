package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors used by repository/use cases
var (
	ErrNotFound      = errors.New("user not found")
	ErrAlreadyExists = errors.New("user already exists")
)

// Repository abstracts persistence concerns from the domain layer.
type Repository interface {
	Create(ctx context.Context, u User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]User, error)
	UpdateFullName(ctx context.Context, id uuid.UUID, fullName string) error
	UpdateProfile(ctx context.Context, id uuid.UUID, p Profile) error
	UpdateSettings(ctx context.Context, id uuid.UUID, s Settings) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	SetPresence(ctx context.Context, id uuid.UUID, online bool, lastSeen time.Time) error

	// AddPoints atomically bumps total_points and the points_earned counter,
	// returning the new total.
	AddPoints(ctx context.Context, id uuid.UUID, delta int) (int, error)
	AppendBadge(ctx context.Context, id uuid.UUID, b Badge) error
	IncrementAchievements(ctx context.Context, id uuid.UUID, delta Achievements) error

	TopByPoints(ctx context.Context, limit int) ([]User, error)
	// Discover returns up to limit users, excluding the given ids, whose
	// target role contains roleLike (case-insensitive) or whose industry
	// matches exactly.
	Discover(ctx context.Context, exclude []uuid.UUID, roleLike, industry string, limit int) ([]User, error)
}
