package leaderboard

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careerpathai/backend/pkg/user"
)

const (
	topLimit      = 10
	extendedLimit = 20
)

// MilestoneCounter reports completed milestones across every roadmap a user
// owns. Satisfied by the roadmap repository.
type MilestoneCounter interface {
	CountCompletedByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}

type UseCase interface {
	Top(ctx context.Context) ([]Entry, error)
	Extended(ctx context.Context) ([]ExtendedEntry, error)
}

type service struct {
	users      user.Repository
	milestones MilestoneCounter
	scores     *ScoreStore
	log        *zap.Logger
}

// NewService builds the leaderboard reader. scores may be nil; reads then go
// straight to SQL.
func NewService(users user.Repository, milestones MilestoneCounter, scores *ScoreStore, log *zap.Logger) UseCase {
	return &service{users: users, milestones: milestones, scores: scores, log: log}
}

func (s *service) Top(ctx context.Context) ([]Entry, error) {
	ranked, err := s.rankedUsers(ctx, topLimit)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(ranked))
	for i, u := range ranked {
		entries = append(entries, Entry{
			Rank:                i + 1,
			UserName:            u.FullName,
			TotalPoints:         u.TotalPoints,
			MilestonesCompleted: s.completedMilestones(ctx, u),
		})
	}
	return entries, nil
}

func (s *service) Extended(ctx context.Context) ([]ExtendedEntry, error) {
	ranked, err := s.rankedUsers(ctx, extendedLimit)
	if err != nil {
		return nil, err
	}
	entries := make([]ExtendedEntry, 0, len(ranked))
	for i, u := range ranked {
		entries = append(entries, ExtendedEntry{
			Rank:                i + 1,
			UserID:              u.ID,
			UserName:            u.FullName,
			TotalPoints:         u.TotalPoints,
			Level:               u.Level,
			MilestonesCompleted: s.completedMilestones(ctx, u),
			BadgesCount:         len(u.Badges),
			FriendsCount:        u.Achievements.FriendsConnected,
			Profile:             u.Profile,
		})
	}
	return entries, nil
}

// completedMilestones counts from the roadmap table, the source of truth;
// the stored achievement counter stands in when the count fails (it can lag
// after status reverts but never blocks the board).
func (s *service) completedMilestones(ctx context.Context, u user.User) int {
	if s.milestones == nil {
		return u.Achievements.MilestonesCompleted
	}
	n, err := s.milestones.CountCompletedByOwner(ctx, u.ID)
	if err != nil {
		s.log.Warn("milestone count failed, using stored counter",
			zap.String("user_id", u.ID.String()), zap.Error(err))
		return u.Achievements.MilestonesCompleted
	}
	return n
}

// rankedUsers reads the redis ranking first and hydrates rows from the user
// store; any cache miss or error degrades to the SQL ordering.
func (s *service) rankedUsers(ctx context.Context, limit int) ([]user.User, error) {
	if s.scores != nil {
		ids, err := s.scores.TopIDs(ctx, limit)
		switch {
		case err != nil:
			s.log.Warn("leaderboard cache read failed", zap.Error(err))
		case len(ids) > 0:
			users, err := s.users.ListByIDs(ctx, ids)
			if err != nil {
				return nil, err
			}
			byID := make(map[uuid.UUID]user.User, len(users))
			for _, u := range users {
				byID[u.ID] = u
			}
			ranked := make([]user.User, 0, len(ids))
			for _, id := range ids {
				if u, ok := byID[id]; ok {
					ranked = append(ranked, u)
				}
			}
			if len(ranked) > 0 {
				return ranked, nil
			}
		}
	}
	return s.users.TopByPoints(ctx, limit)
}
