package social

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrRequestNotFound = errors.New("friend request not found")

type Repository interface {
	CreateRequest(ctx context.Context, fr FriendRequest) error
	GetRequest(ctx context.Context, id uuid.UUID) (FriendRequest, error)
	UpdateRequest(ctx context.Context, fr FriendRequest) error
	ListIncoming(ctx context.Context, recipientID uuid.UUID) ([]FriendRequest, error)
	// PendingBetween reports whether an unanswered request exists between the
	// two users in either direction.
	PendingBetween(ctx context.Context, a, b uuid.UUID) (bool, error)

	CreateFriendship(ctx context.Context, f Friendship) error
	AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error)
	FriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	CountFriends(ctx context.Context, userID uuid.UUID) (int, error)
}
