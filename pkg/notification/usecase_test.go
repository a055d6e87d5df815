package notification

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeNotificationRepo struct {
	created []Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n Notification) error {
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationRepo) ListByUser(_ context.Context, userID uuid.UUID, _ int) ([]Notification, error) {
	var out []Notification
	for _, n := range f.created {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) CountUnread(_ context.Context, userID uuid.UUID) (int, error) {
	n := 0
	for _, note := range f.created {
		if note.UserID == userID && !note.Read {
			n++
		}
	}
	return n, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, userID, id uuid.UUID) error {
	for i := range f.created {
		if f.created[i].UserID == userID && f.created[i].ID == id {
			f.created[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, userID uuid.UUID) (int, error) {
	n := 0
	for i := range f.created {
		if f.created[i].UserID == userID && !f.created[i].Read {
			f.created[i].Read = true
			n++
		}
	}
	return n, nil
}

func (f *fakeNotificationRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	for i := range f.created {
		if f.created[i].UserID == userID && f.created[i].ID == id {
			f.created = append(f.created[:i], f.created[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type fakeNotificationPusher struct {
	pushed []Notification
}

func (f *fakeNotificationPusher) PushNotification(_ uuid.UUID, n Notification) {
	f.pushed = append(f.pushed, n)
}

func TestProducers(t *testing.T) {
	userID := uuid.New()
	tests := []struct {
		name       string
		fire       func(ctx context.Context, svc UseCase) error
		wantType   string
		wantAction string
		wantInMsg  string
	}{
		{
			name: "milestone completed",
			fire: func(ctx context.Context, svc UseCase) error {
				return svc.MilestoneCompleted(ctx, userID, "Strengthen Python Foundations", 10)
			},
			wantType:   TypeAchievementEarned,
			wantAction: "/dashboard",
			wantInMsg:  "'Strengthen Python Foundations' and earned 10 points",
		},
		{
			name: "milestone due",
			fire: func(ctx context.Context, svc UseCase) error {
				return svc.MilestoneDue(ctx, userID, "Master Analytical SQL", "rm-1")
			},
			wantType:   TypeMilestoneDue,
			wantAction: "/roadmap/rm-1",
			wantInMsg:  "Don't forget to work on: Master Analytical SQL",
		},
		{
			name: "friend request received",
			fire: func(ctx context.Context, svc UseCase) error {
				return svc.FriendRequestReceived(ctx, userID, "Alex Rivera")
			},
			wantType:   TypeFriendRequest,
			wantAction: "/social/friends",
			wantInMsg:  "Alex Rivera sent you a friend request",
		},
		{
			name: "friend request accepted",
			fire: func(ctx context.Context, svc UseCase) error {
				return svc.FriendRequestAccepted(ctx, userID, "Sam Okafor")
			},
			wantType:   TypeFriendRequest,
			wantAction: "/social/friends",
			wantInMsg:  "Sam Okafor accepted your friend request",
		},
		{
			name: "badge earned",
			fire: func(ctx context.Context, svc UseCase) error {
				return svc.BadgeEarned(ctx, userID, "First Steps")
			},
			wantType:   TypeAchievementEarned,
			wantAction: "/achievements",
			wantInMsg:  "'First Steps' badge",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeNotificationRepo{}
			pusher := &fakeNotificationPusher{}
			svc := NewService(repo, zap.NewNop())
			svc.SetPusher(pusher)

			require.NoError(t, tt.fire(context.Background(), svc))

			require.Len(t, repo.created, 1)
			n := repo.created[0]
			assert.Equal(t, userID, n.UserID)
			assert.Equal(t, tt.wantType, n.Type)
			assert.Equal(t, tt.wantAction, n.ActionURL)
			assert.Contains(t, n.Message, tt.wantInMsg)
			assert.False(t, n.Read)
			assert.NotEqual(t, uuid.Nil, n.ID)
			assert.False(t, n.CreatedAt.IsZero())

			require.Len(t, pusher.pushed, 1)
			assert.Equal(t, n.ID, pusher.pushed[0].ID)
		})
	}
}

func TestProducers_NoPusherConfigured(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, zap.NewNop())

	require.NoError(t, svc.BadgeEarned(context.Background(), uuid.New(), "First Steps"))
	assert.Len(t, repo.created, 1)
}

func TestFeedOperations(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewService(repo, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, svc.FriendRequestReceived(ctx, userID, "Alex Rivera"))
	require.NoError(t, svc.BadgeEarned(ctx, userID, "First Steps"))
	require.NoError(t, svc.BadgeEarned(ctx, uuid.New(), "First Steps"))

	feed, err := svc.List(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, feed, 2)

	unread, err := svc.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, unread)

	require.NoError(t, svc.MarkRead(ctx, userID, feed[0].ID))
	unread, _ = svc.UnreadCount(ctx, userID)
	assert.Equal(t, 1, unread)

	n, err := svc.MarkAllRead(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, svc.Delete(ctx, userID, feed[0].ID))
	assert.ErrorIs(t, svc.Delete(ctx, userID, feed[0].ID), ErrNotFound)
}
