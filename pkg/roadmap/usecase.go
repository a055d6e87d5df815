package roadmap

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careerpathai/backend/pkg/user"
)

var (
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrInvalidStatus     = errors.New("invalid milestone status")
)

// milestonePoints is awarded once per milestone transition into completed.
const milestonePoints = 10

// PointsAwarder credits gamification points to a user.
type PointsAwarder interface {
	AwardPoints(ctx context.Context, id uuid.UUID, points int) (int, error)
}

// Notifier publishes milestone events to the owner's notification feed.
type Notifier interface {
	MilestoneCompleted(ctx context.Context, userID uuid.UUID, milestoneTitle string, points int) error
}

type UseCase interface {
	Generate(ctx context.Context, ownerID uuid.UUID, a AssessmentInput) Result
	Save(ctx context.Context, ownerID uuid.UUID, rm Roadmap) (Roadmap, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Roadmap, error)
	Get(ctx context.Context, ownerID uuid.UUID, id string) (Roadmap, error)
	UpdateProgress(ctx context.Context, ownerID uuid.UUID, roadmapID, milestoneID string, status Status) (float64, error)
}

type service struct {
	repo   Repository
	users  user.Repository
	gen    *Generator
	points PointsAwarder
	notify Notifier
	log    *zap.Logger
}

func NewService(repo Repository, users user.Repository, gen *Generator, points PointsAwarder, notify Notifier, log *zap.Logger) UseCase {
	return &service{repo: repo, users: users, gen: gen, points: points, notify: notify, log: log}
}

// Generate personalizes the prompt with the owner's name when it can be
// resolved and runs the pipeline. Like the pipeline itself it never fails.
func (s *service) Generate(ctx context.Context, ownerID uuid.UUID, a AssessmentInput) Result {
	displayName := "User"
	if u, err := s.users.GetByID(ctx, ownerID); err == nil && u.FullName != "" {
		displayName = u.FullName
	}
	return s.gen.Generate(ctx, a, displayName)
}

func (s *service) Save(ctx context.Context, ownerID uuid.UUID, rm Roadmap) (Roadmap, error) {
	if rm.ID == "" {
		rm.ID = uuid.NewString()
	}
	rm.UserID = ownerID.String()
	if rm.CreatedAt.IsZero() {
		rm.CreatedAt = time.Now().UTC()
	}
	rm.RecomputeProgress()
	if err := s.repo.Create(ctx, rm); err != nil {
		return Roadmap{}, err
	}
	return rm, nil
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Roadmap, error) {
	return s.repo.ListByOwner(ctx, ownerID, limit, offset)
}

func (s *service) Get(ctx context.Context, ownerID uuid.UUID, id string) (Roadmap, error) {
	return s.repo.GetByIDForOwner(ctx, ownerID, id)
}

// UpdateProgress moves one milestone to a new status, recomputes the derived
// percentage, and on the transition into completed awards points, bumps the
// achievement counter and notifies the owner.
func (s *service) UpdateProgress(ctx context.Context, ownerID uuid.UUID, roadmapID, milestoneID string, status Status) (float64, error) {
	if !status.Valid() {
		return 0, ErrInvalidStatus
	}
	rm, err := s.repo.GetByIDForOwner(ctx, ownerID, roadmapID)
	if err != nil {
		return 0, err
	}
	idx := -1
	for i := range rm.Milestones {
		if rm.Milestones[i].ID == milestoneID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, ErrMilestoneNotFound
	}

	m := &rm.Milestones[idx]
	completedNow := status == StatusCompleted && m.Status != StatusCompleted
	m.Status = status
	if status == StatusCompleted {
		if m.CompletedAt == nil {
			now := time.Now().UTC()
			m.CompletedAt = &now
		}
	} else {
		m.CompletedAt = nil
	}

	progress := rm.RecomputeProgress()
	if err := s.repo.UpdateMilestones(ctx, rm.ID, rm.Milestones, progress); err != nil {
		return 0, err
	}

	if completedNow {
		if _, err := s.points.AwardPoints(ctx, ownerID, milestonePoints); err != nil {
			s.log.Warn("points award failed", zap.String("user_id", ownerID.String()), zap.Error(err))
		}
		if err := s.users.IncrementAchievements(ctx, ownerID, user.Achievements{MilestonesCompleted: 1}); err != nil {
			s.log.Warn("achievement counter update failed", zap.String("user_id", ownerID.String()), zap.Error(err))
		}
		if err := s.notify.MilestoneCompleted(ctx, ownerID, m.Title, milestonePoints); err != nil {
			s.log.Warn("milestone notification failed", zap.String("user_id", ownerID.String()), zap.Error(err))
		}
	}
	return progress, nil
}
