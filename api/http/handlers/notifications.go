package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/careerpathai/backend/api/http/presenter"
	"github.com/careerpathai/backend/pkg/notification"
)

type NotificationHandler struct {
	useCase notification.UseCase
}

func NewNotificationHandler(useCase notification.UseCase) *NotificationHandler {
	return &NotificationHandler{useCase: useCase}
}

// List returns the latest notifications, newest first.
// @Summary List notifications
// @Tags    notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} notification.Notification
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	items, err := h.useCase.List(c.Context(), userID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list notifications")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// UnreadCount returns how many notifications are unread.
// @Summary Unread notification count
// @Tags    notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	n, err := h.useCase.UnreadCount(c.Context(), userID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to count notifications")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"unread_count": n})
}

// MarkRead marks one notification as read.
// @Summary Mark notification read
// @Tags    notifications
// @Produce json
// @Param   id path string true "notification id (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]bool
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid notification id")
	}
	if err := h.useCase.MarkRead(c.Context(), userID, id); err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "notification not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to mark notification read")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"success": true})
}

// MarkAllRead marks every unread notification read.
// @Summary Mark all notifications read
// @Tags    notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /notifications/mark-all-read [put]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	n, err := h.useCase.MarkAllRead(c.Context(), userID)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to mark notifications read")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"success": true, "marked": n})
}

// Delete removes a notification from the feed.
// @Summary Delete notification
// @Tags    notifications
// @Param   id path string true "notification id (UUID)"
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not identify user")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid notification id")
	}
	if err := h.useCase.Delete(c.Context(), userID, id); err != nil {
		if errors.Is(err, notification.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "notification not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete notification")
	}
	return c.SendStatus(http.StatusNoContent)
}
