package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/careerpathai/backend/api/http/presenter"
	"github.com/careerpathai/backend/pkg/social"
	"github.com/careerpathai/backend/pkg/user"
)

type SocialHandler struct {
	useCase social.UseCase
}

func NewSocialHandler(useCase social.UseCase) *SocialHandler {
	return &SocialHandler{useCase: useCase}
}

type friendRequestRequest struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SendFriendRequest invites another user by email.
// @Summary Send friend request
// @Tags    social
// @Accept  json
// @Produce json
// @Param   input body friendRequestRequest true "recipient email and optional message"
// @Security BearerAuth
// @Success 201 {object} social.FriendRequest
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /social/friend-request [post]
func (h *SocialHandler) SendFriendRequest(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	var req friendRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" {
		return presenter.Error(c, http.StatusBadRequest, "email is required")
	}

	fr, err := h.useCase.SendFriendRequest(c.Context(), userID, req.Email, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "user not found")
		case errors.Is(err, social.ErrSelfRequest):
			return presenter.Error(c, http.StatusBadRequest, "cannot send a friend request to yourself")
		case errors.Is(err, social.ErrAlreadyFriends):
			return presenter.Error(c, http.StatusBadRequest, "you are already friends")
		case errors.Is(err, social.ErrDuplicateRequest):
			return presenter.Error(c, http.StatusBadRequest, "friend request already exists")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to send friend request")
		}
	}
	return presenter.JSON(c, http.StatusCreated, fr)
}

// FriendRequests lists pending requests addressed to the user.
// @Summary Incoming friend requests
// @Tags    social
// @Produce json
// @Security BearerAuth
// @Success 200 {array} social.FriendRequest
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /social/friend-requests [get]
func (h *SocialHandler) FriendRequests(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	items, err := h.useCase.IncomingRequests(c.Context(), userID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list friend requests")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

type respondRequest struct {
	Accept bool `json:"accept"`
}

// Respond accepts or declines a pending friend request.
// @Summary Respond to friend request
// @Tags    social
// @Accept  json
// @Produce json
// @Param   id path string true "request id (UUID)"
// @Param   input body respondRequest true "accept or decline"
// @Security BearerAuth
// @Success 200 {object} social.FriendRequest
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /social/friend-request/{id}/respond [post]
func (h *SocialHandler) Respond(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid request id")
	}
	var req respondRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	fr, err := h.useCase.Respond(c.Context(), userID, requestID, req.Accept)
	if err != nil {
		switch {
		case errors.Is(err, social.ErrRequestNotFound):
			return presenter.Error(c, http.StatusNotFound, "friend request not found")
		case errors.Is(err, social.ErrAlreadyResponded):
			return presenter.Error(c, http.StatusBadRequest, "friend request already responded to")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to respond to friend request")
		}
	}
	return presenter.JSON(c, http.StatusOK, fr)
}

// Friends returns the user's friends with live presence.
// @Summary List friends
// @Tags    social
// @Produce json
// @Security BearerAuth
// @Success 200 {array} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /social/friends [get]
func (h *SocialHandler) Friends(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	friends, err := h.useCase.Friends(c.Context(), userID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list friends")
	}
	out := make([]fiber.Map, 0, len(friends))
	for _, f := range friends {
		out = append(out, publicUserView(f))
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// Achievements returns earned badges and progress toward the rest.
// @Summary Achievements overview
// @Tags    social
// @Produce json
// @Security BearerAuth
// @Success 200 {object} social.AchievementsView
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /social/achievements [get]
func (h *SocialHandler) Achievements(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	view, err := h.useCase.Achievements(c.Context(), userID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load achievements")
	}
	return presenter.JSON(c, http.StatusOK, view)
}

// ClaimBadge claims an earned badge and awards its points.
// @Summary Claim badge
// @Tags    social
// @Produce json
// @Param   id path string true "badge id"
// @Security BearerAuth
// @Success 200 {object} user.Badge
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /social/claim-badge/{id} [post]
func (h *SocialHandler) ClaimBadge(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	b, err := h.useCase.ClaimBadge(c.Context(), userID, c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, social.ErrBadgeUnknown):
			return presenter.Error(c, http.StatusNotFound, "badge not found")
		case errors.Is(err, social.ErrBadgeAlreadyClaimed):
			return presenter.Error(c, http.StatusBadRequest, "badge already claimed")
		case errors.Is(err, social.ErrBadgeNotEligible):
			return presenter.Error(c, http.StatusBadRequest, "badge requirements not met")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to claim badge")
		}
	}
	return presenter.JSON(c, http.StatusOK, b)
}

// Discover suggests users with a similar target role or industry.
// @Summary Discover users
// @Tags    social
// @Produce json
// @Security BearerAuth
// @Success 200 {array} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /social/discover-users [get]
func (h *SocialHandler) Discover(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	users, err := h.useCase.Discover(c.Context(), userID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to discover users")
	}
	out := make([]fiber.Map, 0, len(users))
	for _, u := range users {
		out = append(out, publicUserView(u))
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// publicUserView strips account-private fields from a user for social lists.
func publicUserView(u user.User) fiber.Map {
	return fiber.Map{
		"id":           u.ID,
		"full_name":    u.FullName,
		"profile":      u.Profile,
		"total_points": u.TotalPoints,
		"level":        u.Level,
		"is_online":    u.IsOnline,
		"last_seen":    u.LastSeen,
	}
}
