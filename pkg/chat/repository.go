package chat

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, m Message) error
	// Between returns the most recent messages exchanged by the pair,
	// oldest first.
	Between(ctx context.Context, a, b uuid.UUID, limit int) ([]Message, error)
	// RecentForUser returns the most recent messages the user sent or
	// received, oldest first.
	RecentForUser(ctx context.Context, userID uuid.UUID, limit int) ([]Message, error)
	// MarkReadFrom marks the sender's unread messages to the recipient as
	// read, returning how many changed.
	MarkReadFrom(ctx context.Context, recipientID, senderID uuid.UUID) (int, error)
	Conversations(ctx context.Context, userID uuid.UUID) ([]Conversation, error)
}
