package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careerpathai/backend/pkg/user"
)

var ErrEmptyMessage = errors.New("message content is empty")

const (
	historyLimit = 200
	recentLimit  = 50
)

// Pusher delivers a just-sent message to the recipient's live session.
// Implementations must not block.
type Pusher interface {
	PushMessage(recipientID uuid.UUID, m Message)
}

type UseCase interface {
	Conversations(ctx context.Context, userID uuid.UUID) ([]Conversation, error)
	// History returns the conversation with partner oldest first, then marks
	// the partner's messages as read.
	History(ctx context.Context, userID, partnerID uuid.UUID) ([]Message, error)
	Send(ctx context.Context, senderID, recipientID uuid.UUID, content string) (Message, error)
	MarkRead(ctx context.Context, userID, partnerID uuid.UUID) (int, error)
	// RecentHistory returns the latest messages across all of the user's
	// conversations, oldest first. Used to replay history on connect.
	RecentHistory(ctx context.Context, userID uuid.UUID) ([]Message, error)

	SetPusher(p Pusher)
}

type service struct {
	repo   Repository
	users  user.Repository
	pusher Pusher
	log    *zap.Logger
}

func NewService(repo Repository, users user.Repository, log *zap.Logger) UseCase {
	return &service{repo: repo, users: users, log: log}
}

func (s *service) SetPusher(p Pusher) { s.pusher = p }

func (s *service) Conversations(ctx context.Context, userID uuid.UUID) ([]Conversation, error) {
	return s.repo.Conversations(ctx, userID)
}

func (s *service) History(ctx context.Context, userID, partnerID uuid.UUID) ([]Message, error) {
	msgs, err := s.repo.Between(ctx, userID, partnerID, historyLimit)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.MarkReadFrom(ctx, userID, partnerID); err != nil {
		s.log.Warn("mark read failed", zap.String("user_id", userID.String()), zap.Error(err))
	}
	return msgs, nil
}

func (s *service) Send(ctx context.Context, senderID, recipientID uuid.UUID, content string) (Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Message{}, ErrEmptyMessage
	}
	if _, err := s.users.GetByID(ctx, recipientID); err != nil {
		return Message{}, err
	}
	m := Message{
		ID:          uuid.New(),
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     content,
		Timestamp:   time.Now().UTC(),
		MessageType: MessageTypePrivate,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return Message{}, err
	}
	if s.pusher != nil {
		s.pusher.PushMessage(recipientID, m)
	}
	return m, nil
}

func (s *service) MarkRead(ctx context.Context, userID, partnerID uuid.UUID) (int, error) {
	return s.repo.MarkReadFrom(ctx, userID, partnerID)
}

func (s *service) RecentHistory(ctx context.Context, userID uuid.UUID) ([]Message, error) {
	return s.repo.RecentForUser(ctx, userID, recentLimit)
}
