package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/careerpathai/backend/api/http/presenter"
	"github.com/careerpathai/backend/pkg/chat"
	"github.com/careerpathai/backend/pkg/metrics"
	"github.com/careerpathai/backend/pkg/user"
)

type ChatHandler struct {
	useCase chat.UseCase
}

func NewChatHandler(useCase chat.UseCase) *ChatHandler {
	return &ChatHandler{useCase: useCase}
}

// Conversations returns the inbox: one row per partner with unread counts.
// @Summary List conversations
// @Tags    chat
// @Produce json
// @Security BearerAuth
// @Success 200 {array} chat.Conversation
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /chat/conversations [get]
func (h *ChatHandler) Conversations(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	items, err := h.useCase.Conversations(c.Context(), userID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list conversations")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// History returns the conversation with a partner, oldest first, and marks
// their messages read.
// @Summary Conversation history
// @Tags    chat
// @Produce json
// @Param   id path string true "partner user id (UUID)"
// @Security BearerAuth
// @Success 200 {array} chat.Message
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /chat/conversation/{id} [get]
func (h *ChatHandler) History(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	partnerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid partner id")
	}
	msgs, err := h.useCase.History(c.Context(), userID, partnerID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to load conversation")
	}
	return presenter.JSON(c, http.StatusOK, msgs)
}

type sendMessageRequest struct {
	RecipientID string `json:"recipient_id"`
	Content     string `json:"content"`
}

// Send delivers a private message over REST; connected recipients also get
// it pushed on their websocket.
// @Summary Send message
// @Tags    chat
// @Accept  json
// @Produce json
// @Param   input body sendMessageRequest true "recipient and content"
// @Security BearerAuth
// @Success 201 {object} chat.Message
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /chat/send-message [post]
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	recipientID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid recipient_id")
	}

	m, err := h.useCase.Send(c.Context(), userID, recipientID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyMessage):
			return presenter.Error(c, http.StatusBadRequest, "message content is required")
		case errors.Is(err, user.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "recipient not found")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to send message")
		}
	}
	metrics.ChatMessagesSent.WithLabelValues("rest").Inc()
	return presenter.JSON(c, http.StatusCreated, m)
}

// MarkRead marks all messages from a partner as read.
// @Summary Mark conversation read
// @Tags    chat
// @Produce json
// @Param   id path string true "partner user id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /chat/mark-read/{id} [post]
func (h *ChatHandler) MarkRead(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	partnerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid partner id")
	}
	n, err := h.useCase.MarkRead(c.Context(), userID, partnerID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to mark messages read")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"success": true, "marked": n})
}
