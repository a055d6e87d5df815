package social

import "github.com/careerpathai/backend/pkg/user"

type badgeDef struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Rarity      string
	eligible    func(a user.Achievements) bool
}

// badgeCatalog is ordered for stable API output.
var badgeCatalog = []badgeDef{
	{
		ID:          "first_milestone",
		Name:        "First Steps",
		Description: "Complete your first milestone",
		Icon:        "🎯",
		Rarity:      "common",
		eligible:    func(a user.Achievements) bool { return a.MilestonesCompleted >= 1 },
	},
	{
		ID:          "milestone_master",
		Name:        "Milestone Master",
		Description: "Complete 5 milestones",
		Icon:        "🏆",
		Rarity:      "rare",
		eligible:    func(a user.Achievements) bool { return a.MilestonesCompleted >= 5 },
	},
	{
		ID:          "point_collector",
		Name:        "Point Collector",
		Description: "Earn 100 points",
		Icon:        "💎",
		Rarity:      "rare",
		eligible:    func(a user.Achievements) bool { return a.PointsEarned >= 100 },
	},
	{
		ID:          "social_butterfly",
		Name:        "Social Butterfly",
		Description: "Connect with 3 friends",
		Icon:        "🦋",
		Rarity:      "epic",
		eligible:    func(a user.Achievements) bool { return a.FriendsConnected >= 3 },
	},
}

var rarityPoints = map[string]int{
	"common":    10,
	"rare":      25,
	"epic":      50,
	"legendary": 100,
}

func findBadge(id string) (badgeDef, bool) {
	for _, d := range badgeCatalog {
		if d.ID == id {
			return d, true
		}
	}
	return badgeDef{}, false
}
