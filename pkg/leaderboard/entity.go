package leaderboard

import (
	"github.com/google/uuid"

	"github.com/careerpathai/backend/pkg/user"
)

type Entry struct {
	Rank                int    `json:"rank"`
	UserName            string `json:"user_name"`
	TotalPoints         int    `json:"total_points"`
	MilestonesCompleted int    `json:"milestones_completed"`
}

type ExtendedEntry struct {
	Rank                int          `json:"rank"`
	UserID              uuid.UUID    `json:"user_id"`
	UserName            string       `json:"user_name"`
	TotalPoints         int          `json:"total_points"`
	Level               int          `json:"level"`
	MilestonesCompleted int          `json:"milestones_completed"`
	BadgesCount         int          `json:"badges_count"`
	FriendsCount        int          `json:"friends_count"`
	Profile             user.Profile `json:"profile"`
}
