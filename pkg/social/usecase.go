package social

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careerpathai/backend/pkg/user"
)

var (
	ErrSelfRequest         = errors.New("cannot send a friend request to yourself")
	ErrDuplicateRequest    = errors.New("friend request already exists")
	ErrAlreadyFriends      = errors.New("users are already friends")
	ErrAlreadyResponded    = errors.New("friend request already responded to")
	ErrBadgeUnknown        = errors.New("badge not found")
	ErrBadgeAlreadyClaimed = errors.New("badge already claimed")
	ErrBadgeNotEligible    = errors.New("badge requirements not met")
)

const discoverLimit = 10

// PointsAwarder credits gamification points to a user.
type PointsAwarder interface {
	AwardPoints(ctx context.Context, id uuid.UUID, points int) (int, error)
}

// Notifier publishes social events to the affected user's feed.
type Notifier interface {
	FriendRequestReceived(ctx context.Context, userID uuid.UUID, senderName string) error
	FriendRequestAccepted(ctx context.Context, userID uuid.UUID, accepterName string) error
	BadgeEarned(ctx context.Context, userID uuid.UUID, badgeName string) error
}

type UseCase interface {
	SendFriendRequest(ctx context.Context, senderID uuid.UUID, recipientEmail, message string) (FriendRequest, error)
	IncomingRequests(ctx context.Context, userID uuid.UUID) ([]FriendRequest, error)
	Respond(ctx context.Context, userID, requestID uuid.UUID, accept bool) (FriendRequest, error)
	Friends(ctx context.Context, userID uuid.UUID) ([]user.User, error)
	FriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	Achievements(ctx context.Context, userID uuid.UUID) (AchievementsView, error)
	ClaimBadge(ctx context.Context, userID uuid.UUID, badgeID string) (user.Badge, error)
	Discover(ctx context.Context, userID uuid.UUID) ([]user.User, error)
}

type service struct {
	repo   Repository
	users  user.Repository
	points PointsAwarder
	notify Notifier
	log    *zap.Logger
}

func NewService(repo Repository, users user.Repository, points PointsAwarder, notify Notifier, log *zap.Logger) UseCase {
	return &service{repo: repo, users: users, points: points, notify: notify, log: log}
}

func (s *service) SendFriendRequest(ctx context.Context, senderID uuid.UUID, recipientEmail, message string) (FriendRequest, error) {
	recipient, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(recipientEmail)))
	if err != nil {
		return FriendRequest{}, err
	}
	if recipient.ID == senderID {
		return FriendRequest{}, ErrSelfRequest
	}
	sender, err := s.users.GetByID(ctx, senderID)
	if err != nil {
		return FriendRequest{}, err
	}
	friends, err := s.repo.AreFriends(ctx, senderID, recipient.ID)
	if err != nil {
		return FriendRequest{}, err
	}
	if friends {
		return FriendRequest{}, ErrAlreadyFriends
	}
	pending, err := s.repo.PendingBetween(ctx, senderID, recipient.ID)
	if err != nil {
		return FriendRequest{}, err
	}
	if pending {
		return FriendRequest{}, ErrDuplicateRequest
	}

	fr := FriendRequest{
		ID:            uuid.New(),
		SenderID:      senderID,
		RecipientID:   recipient.ID,
		SenderName:    sender.FullName,
		RecipientName: recipient.FullName,
		Message:       message,
		Status:        RequestPending,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.CreateRequest(ctx, fr); err != nil {
		return FriendRequest{}, err
	}
	if err := s.notify.FriendRequestReceived(ctx, recipient.ID, sender.FullName); err != nil {
		s.log.Warn("friend request notification failed", zap.String("recipient_id", recipient.ID.String()), zap.Error(err))
	}
	return fr, nil
}

func (s *service) IncomingRequests(ctx context.Context, userID uuid.UUID) ([]FriendRequest, error) {
	return s.repo.ListIncoming(ctx, userID)
}

// Respond resolves a pending request. Only the recipient may respond;
// requests addressed to someone else read as not found.
func (s *service) Respond(ctx context.Context, userID, requestID uuid.UUID, accept bool) (FriendRequest, error) {
	fr, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return FriendRequest{}, err
	}
	if fr.RecipientID != userID {
		return FriendRequest{}, ErrRequestNotFound
	}
	if fr.Status != RequestPending {
		return FriendRequest{}, ErrAlreadyResponded
	}

	now := time.Now().UTC()
	fr.RespondedAt = &now
	fr.Status = RequestDeclined
	if accept {
		fr.Status = RequestAccepted
	}
	if err := s.repo.UpdateRequest(ctx, fr); err != nil {
		return FriendRequest{}, err
	}
	if !accept {
		return fr, nil
	}

	if err := s.repo.CreateFriendship(ctx, Friendship{
		ID:        uuid.New(),
		User1ID:   fr.SenderID,
		User2ID:   fr.RecipientID,
		CreatedAt: now,
	}); err != nil {
		return FriendRequest{}, err
	}
	for _, id := range []uuid.UUID{fr.SenderID, fr.RecipientID} {
		if err := s.users.IncrementAchievements(ctx, id, user.Achievements{FriendsConnected: 1}); err != nil {
			s.log.Warn("friend counter update failed", zap.String("user_id", id.String()), zap.Error(err))
		}
	}
	if err := s.notify.FriendRequestAccepted(ctx, fr.SenderID, fr.RecipientName); err != nil {
		s.log.Warn("friend accept notification failed", zap.String("sender_id", fr.SenderID.String()), zap.Error(err))
	}
	return fr, nil
}

func (s *service) Friends(ctx context.Context, userID uuid.UUID) ([]user.User, error) {
	ids, err := s.repo.FriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []user.User{}, nil
	}
	return s.users.ListByIDs(ctx, ids)
}

func (s *service) FriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return s.repo.FriendIDs(ctx, userID)
}

func (s *service) Achievements(ctx context.Context, userID uuid.UUID) (AchievementsView, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return AchievementsView{}, err
	}
	stats, err := s.effectiveStats(ctx, u)
	if err != nil {
		return AchievementsView{}, err
	}

	earned := u.Badges
	if earned == nil {
		earned = []user.Badge{}
	}
	available := make([]BadgeStatus, 0, len(badgeCatalog))
	for _, d := range badgeCatalog {
		if u.HasBadge(d.ID) {
			continue
		}
		available = append(available, BadgeStatus{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Icon:        d.Icon,
			Rarity:      d.Rarity,
			Eligible:    d.eligible(stats),
		})
	}
	return AchievementsView{Current: stats, Earned: earned, Available: available}, nil
}

func (s *service) ClaimBadge(ctx context.Context, userID uuid.UUID, badgeID string) (user.Badge, error) {
	def, ok := findBadge(badgeID)
	if !ok {
		return user.Badge{}, ErrBadgeUnknown
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.Badge{}, err
	}
	if u.HasBadge(def.ID) {
		return user.Badge{}, ErrBadgeAlreadyClaimed
	}
	stats, err := s.effectiveStats(ctx, u)
	if err != nil {
		return user.Badge{}, err
	}
	if !def.eligible(stats) {
		return user.Badge{}, ErrBadgeNotEligible
	}

	b := user.Badge{
		ID:          def.ID,
		Name:        def.Name,
		Description: def.Description,
		Icon:        def.Icon,
		Rarity:      def.Rarity,
		DateEarned:  time.Now().UTC(),
	}
	if err := s.users.AppendBadge(ctx, userID, b); err != nil {
		return user.Badge{}, err
	}
	if _, err := s.points.AwardPoints(ctx, userID, rarityPoints[def.Rarity]); err != nil {
		s.log.Warn("badge points award failed", zap.String("user_id", userID.String()), zap.Error(err))
	}
	if err := s.notify.BadgeEarned(ctx, userID, def.Name); err != nil {
		s.log.Warn("badge notification failed", zap.String("user_id", userID.String()), zap.Error(err))
	}
	return b, nil
}

func (s *service) Discover(ctx context.Context, userID uuid.UUID) ([]user.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	friendIDs, err := s.repo.FriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	exclude := append([]uuid.UUID{userID}, friendIDs...)
	return s.users.Discover(ctx, exclude, u.Profile.TargetRole, u.Profile.Industry, discoverLimit)
}

// effectiveStats overlays the stored counters with the authoritative
// friendship count; counters can lag when increments are lost.
func (s *service) effectiveStats(ctx context.Context, u user.User) (user.Achievements, error) {
	stats := u.Achievements
	friends, err := s.repo.CountFriends(ctx, u.ID)
	if err != nil {
		return user.Achievements{}, err
	}
	stats.FriendsConnected = friends
	if u.TotalPoints > stats.PointsEarned {
		stats.PointsEarned = u.TotalPoints
	}
	return stats, nil
}
