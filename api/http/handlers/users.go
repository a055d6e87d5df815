package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/careerpathai/backend/api/http/presenter"
	"github.com/careerpathai/backend/pkg/user"
)

type UserHandler struct {
	useCase user.UseCase
}

func NewUserHandler(useCase user.UseCase) *UserHandler {
	return &UserHandler{useCase: useCase}
}

// Get returns another user's public profile. Email and settings stay private.
// @Summary Public user profile
// @Tags    users
// @Produce json
// @Param   id path string true "user id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /users/{id} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid user id")
	}
	u, err := h.useCase.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "user not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load user")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"id":           u.ID,
		"full_name":    u.FullName,
		"profile":      u.Profile,
		"total_points": u.TotalPoints,
		"level":        u.Level,
		"badges":       u.Badges,
		"achievements": u.Achievements,
		"is_online":    u.IsOnline,
		"last_seen":    u.LastSeen,
		"created_at":   u.CreatedAt,
	})
}
