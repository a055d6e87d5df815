package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/careerpathai/backend/api/http/presenter"
	"github.com/careerpathai/backend/pkg/leaderboard"
)

type LeaderboardHandler struct {
	useCase leaderboard.UseCase
}

func NewLeaderboardHandler(useCase leaderboard.UseCase) *LeaderboardHandler {
	return &LeaderboardHandler{useCase: useCase}
}

// Top returns the ten highest-scoring users.
// @Summary Leaderboard
// @Tags    leaderboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} leaderboard.Entry
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /leaderboard [get]
func (h *LeaderboardHandler) Top(c *fiber.Ctx) error {
	entries, err := h.useCase.Top(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load leaderboard")
	}
	return presenter.JSON(c, http.StatusOK, entries)
}

// Extended returns the top twenty with badges and social stats.
// @Summary Extended leaderboard
// @Tags    leaderboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} leaderboard.ExtendedEntry
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /social/leaderboard/extended [get]
func (h *LeaderboardHandler) Extended(c *fiber.Ctx) error {
	entries, err := h.useCase.Extended(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load leaderboard")
	}
	return presenter.JSON(c, http.StatusOK, entries)
}
