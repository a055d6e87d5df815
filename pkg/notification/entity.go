package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeMilestoneDue      = "milestone_due"
	TypeAchievementEarned = "achievement_earned"
	TypeFriendRequest     = "friend_request"
	TypeSystem            = "system"
)

type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	ActionURL string    `json:"action_url,omitempty"`
}
