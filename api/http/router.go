package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerpathai/backend/api/http/handlers"
)

// Handlers bundles everything Register needs to wire the API surface.
type Handlers struct {
	Auth          *handlers.AuthHandler
	Users         *handlers.UserHandler
	Roadmaps      *handlers.RoadmapHandler
	Social        *handlers.SocialHandler
	Chat          *handlers.ChatHandler
	Notifications *handlers.NotificationHandler
	Leaderboard   *handlers.LeaderboardHandler
	Health        *handlers.HealthHandler
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h Handlers, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", h.Auth.Register)
	a.Post("/login", h.Auth.Login)
	a.Get("/me", authMW, h.Auth.Me)
	a.Put("/profile", authMW, h.Auth.UpdateProfile)
	a.Put("/settings", authMW, h.Auth.UpdateSettings)

	v1.Get("/users/:id", authMW, h.Users.Get)

	// Roadmap generation and progress
	r := v1.Group("/roadmaps", authMW)
	r.Post("/generate", h.Roadmaps.Generate)
	r.Post("/", h.Roadmaps.Create)
	r.Get("/", h.Roadmaps.List)
	r.Get("/:id", h.Roadmaps.Get)
	r.Put("/:id/progress", h.Roadmaps.UpdateProgress)

	// Friends, achievements, discovery
	s := v1.Group("/social", authMW)
	s.Post("/friend-request", h.Social.SendFriendRequest)
	s.Get("/friend-requests", h.Social.FriendRequests)
	s.Post("/friend-request/:id/respond", h.Social.Respond)
	s.Get("/friends", h.Social.Friends)
	s.Get("/achievements", h.Social.Achievements)
	s.Post("/claim-badge/:id", h.Social.ClaimBadge)
	s.Get("/discover-users", h.Social.Discover)
	s.Get("/leaderboard/extended", h.Leaderboard.Extended)

	v1.Get("/leaderboard", authMW, h.Leaderboard.Top)

	n := v1.Group("/notifications", authMW)
	n.Get("/", h.Notifications.List)
	n.Get("/unread-count", h.Notifications.UnreadCount)
	n.Put("/mark-all-read", h.Notifications.MarkAllRead)
	n.Put("/:id/read", h.Notifications.MarkRead)
	n.Delete("/:id", h.Notifications.Delete)

	// Private messaging (REST side; live delivery goes over /ws)
	ch := v1.Group("/chat", authMW)
	ch.Get("/conversations", h.Chat.Conversations)
	ch.Get("/conversation/:id", h.Chat.History)
	ch.Post("/send-message", h.Chat.Send)
	ch.Post("/mark-read/:id", h.Chat.MarkRead)
}
