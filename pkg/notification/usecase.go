package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// feedLimit caps how many notifications the feed returns.
const feedLimit = 50

// Pusher delivers a notification to the user's live websocket session, if
// any. Implementations must not block.
type Pusher interface {
	PushNotification(userID uuid.UUID, n Notification)
}

type UseCase interface {
	List(ctx context.Context, userID uuid.UUID) ([]Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error

	MilestoneCompleted(ctx context.Context, userID uuid.UUID, milestoneTitle string, points int) error
	MilestoneDue(ctx context.Context, userID uuid.UUID, milestoneTitle, roadmapID string) error
	FriendRequestReceived(ctx context.Context, userID uuid.UUID, senderName string) error
	FriendRequestAccepted(ctx context.Context, userID uuid.UUID, accepterName string) error
	BadgeEarned(ctx context.Context, userID uuid.UUID, badgeName string) error

	// SetPusher attaches the live-delivery channel after construction; the
	// websocket hub is built later in the wiring order.
	SetPusher(p Pusher)
}

type service struct {
	repo   Repository
	pusher Pusher
	log    *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) UseCase {
	return &service{repo: repo, log: log}
}

func (s *service) SetPusher(p Pusher) { s.pusher = p }

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]Notification, error) {
	return s.repo.ListByUser(ctx, userID, feedLimit)
}

func (s *service) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *service) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.MarkRead(ctx, userID, id)
}

func (s *service) MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *service) MilestoneCompleted(ctx context.Context, userID uuid.UUID, milestoneTitle string, points int) error {
	return s.create(ctx, Notification{
		UserID:    userID,
		Title:     "Milestone Completed! 🎯",
		Message:   fmt.Sprintf("You completed '%s' and earned %d points!", milestoneTitle, points),
		Type:      TypeAchievementEarned,
		ActionURL: "/dashboard",
	})
}

func (s *service) MilestoneDue(ctx context.Context, userID uuid.UUID, milestoneTitle, roadmapID string) error {
	return s.create(ctx, Notification{
		UserID:    userID,
		Title:     "Milestone Reminder",
		Message:   fmt.Sprintf("Don't forget to work on: %s", milestoneTitle),
		Type:      TypeMilestoneDue,
		ActionURL: "/roadmap/" + roadmapID,
	})
}

func (s *service) FriendRequestReceived(ctx context.Context, userID uuid.UUID, senderName string) error {
	return s.create(ctx, Notification{
		UserID:    userID,
		Title:     "New Friend Request",
		Message:   fmt.Sprintf("%s sent you a friend request", senderName),
		Type:      TypeFriendRequest,
		ActionURL: "/social/friends",
	})
}

func (s *service) FriendRequestAccepted(ctx context.Context, userID uuid.UUID, accepterName string) error {
	return s.create(ctx, Notification{
		UserID:    userID,
		Title:     "Friend Request Accepted",
		Message:   fmt.Sprintf("%s accepted your friend request", accepterName),
		Type:      TypeFriendRequest,
		ActionURL: "/social/friends",
	})
}

func (s *service) BadgeEarned(ctx context.Context, userID uuid.UUID, badgeName string) error {
	return s.create(ctx, Notification{
		UserID:    userID,
		Title:     "Achievement Unlocked! 🎉",
		Message:   fmt.Sprintf("You earned the '%s' badge!", badgeName),
		Type:      TypeAchievementEarned,
		ActionURL: "/achievements",
	})
}

// create persists the notification and pushes it to a live session when one
// is connected. Push failures never surface: the stored copy is the record.
func (s *service) create(ctx context.Context, n Notification) error {
	n.ID = uuid.New()
	n.Read = false
	n.CreatedAt = time.Now().UTC()
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}
	if s.pusher != nil {
		s.pusher.PushNotification(n.UserID, n)
	}
	s.log.Debug("notification created",
		zap.String("user_id", n.UserID.String()),
		zap.String("type", n.Type))
	return nil
}
