package roadmap

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("roadmap not found")

type Repository interface {
	Create(ctx context.Context, r Roadmap) error
	GetByIDForOwner(ctx context.Context, ownerID uuid.UUID, id string) (Roadmap, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Roadmap, error)
	UpdateMilestones(ctx context.Context, id string, milestones []Milestone, progress float64) error
	CountCompletedByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
	// ListInProgress returns roadmaps holding at least one in-progress
	// milestone, any owner. Feeds the reminder sweep.
	ListInProgress(ctx context.Context) ([]Roadmap, error)
}
