package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var errNoUser = errors.New("no authenticated user")

// currentUserID reads the id the auth middleware stored in locals.
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("userId").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errNoUser
	}
	return id, nil
}
