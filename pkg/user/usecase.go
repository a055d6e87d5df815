package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScoreCache mirrors point totals into the leaderboard ranking cache.
type ScoreCache interface {
	SetScore(ctx context.Context, id uuid.UUID, total int) error
}

// UseCase covers cross-domain user operations: public lookups, point
// awards and presence tracking.
type UseCase interface {
	Get(ctx context.Context, id uuid.UUID) (User, error)
	AwardPoints(ctx context.Context, id uuid.UUID, points int) (int, error)
	SetPresence(ctx context.Context, id uuid.UUID, online bool) error
}

type service struct {
	repo   Repository
	scores ScoreCache
	log    *zap.Logger
}

// NewService returns the default UseCase implementation. scores may be nil
// when no ranking cache is configured.
func NewService(repo Repository, scores ScoreCache, log *zap.Logger) UseCase {
	return &service{repo: repo, scores: scores, log: log}
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) AwardPoints(ctx context.Context, id uuid.UUID, points int) (int, error) {
	total, err := s.repo.AddPoints(ctx, id, points)
	if err != nil {
		return 0, err
	}
	if s.scores != nil {
		if err := s.scores.SetScore(ctx, id, total); err != nil {
			// Ranking cache is best-effort; reads fall back to SQL.
			s.log.Warn("leaderboard cache update failed",
				zap.String("user_id", id.String()), zap.Error(err))
		}
	}
	return total, nil
}

func (s *service) SetPresence(ctx context.Context, id uuid.UUID, online bool) error {
	return s.repo.SetPresence(ctx, id, online, time.Now().UTC())
}
