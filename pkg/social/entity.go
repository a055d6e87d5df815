package social

import (
	"time"

	"github.com/google/uuid"

	"github.com/careerpathai/backend/pkg/user"
)

const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestDeclined = "declined"
)

// FriendRequest carries denormalized sender/recipient names so lists render
// without extra lookups.
type FriendRequest struct {
	ID            uuid.UUID  `json:"id"`
	SenderID      uuid.UUID  `json:"sender_id"`
	RecipientID   uuid.UUID  `json:"recipient_id"`
	SenderName    string     `json:"sender_name"`
	RecipientName string     `json:"recipient_name"`
	Message       string     `json:"message,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	RespondedAt   *time.Time `json:"responded_at,omitempty"`
}

// Friendship is stored once per pair; both directions query the same row.
type Friendship struct {
	ID        uuid.UUID `json:"id"`
	User1ID   uuid.UUID `json:"user1_id"`
	User2ID   uuid.UUID `json:"user2_id"`
	CreatedAt time.Time `json:"created_at"`
}

// AchievementsView is the gamification summary for the achievements page.
type AchievementsView struct {
	Current   user.Achievements `json:"current_achievements"`
	Earned    []user.Badge      `json:"earned_badges"`
	Available []BadgeStatus     `json:"available_badges"`
}

// BadgeStatus describes a catalog badge the user has not claimed yet.
type BadgeStatus struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Rarity      string `json:"rarity"`
	Eligible    bool   `json:"eligible"`
}
