package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the account document. Sub-documents (profile, settings, badges)
// mirror the stored JSON shape; counters back the achievements view.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"full_name"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	IsOnline     bool       `json:"is_online"`
	LastSeen     *time.Time `json:"last_seen,omitempty"`
	TotalPoints  int        `json:"total_points"`
	Level        int        `json:"level"`
	Badges       []Badge    `json:"badges"`
	Settings     Settings   `json:"settings"`
	Profile      Profile    `json:"profile"`

	Achievements Achievements `json:"achievements"`
}

// Profile holds the career-transition fields the user fills in over time.
type Profile struct {
	Bio            string   `json:"bio"`
	CurrentRole    string   `json:"current_role"`
	TargetRole     string   `json:"target_role"`
	Skills         []string `json:"skills"`
	EducationLevel string   `json:"education_level"`
	WorkExperience string   `json:"work_experience"`
	Industry       string   `json:"industry"`
}

// Settings controls notification and UI preferences.
type Settings struct {
	EmailNotifications bool   `json:"email_notifications"`
	ReminderFrequency  string `json:"reminder_frequency"` // daily, weekly, monthly, none
	Theme              string `json:"theme"`              // light, dark
}

// DefaultSettings is applied at registration time.
func DefaultSettings() Settings {
	return Settings{
		EmailNotifications: true,
		ReminderFrequency:  "weekly",
		Theme:              "light",
	}
}

// Badge is an earned gamification award.
type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Rarity      string    `json:"rarity"` // common, rare, epic, legendary
	DateEarned  time.Time `json:"date_earned"`
}

// Achievements are lifetime counters driving badge eligibility.
type Achievements struct {
	MilestonesCompleted int `json:"milestones_completed"`
	CoursesCompleted    int `json:"courses_completed"`
	PointsEarned        int `json:"points_earned"`
	FriendsConnected    int `json:"friends_connected"`
}

// HasBadge reports whether the badge with the given id was already earned.
func (u User) HasBadge(id string) bool {
	for _, b := range u.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}
