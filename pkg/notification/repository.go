package notification

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("notification not found")

type Repository interface {
	Create(ctx context.Context, n Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
