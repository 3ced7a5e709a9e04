package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ysabouh/hama-togather-sub000/domain"
)

// statusForError maps the error taxonomy onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrFamilyNotFound),
		errors.Is(err, domain.ErrNeedNotFound),
		errors.Is(err, domain.ErrDonationNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func actorFromCtx(c *fiber.Ctx) domain.Actor {
	userID, _ := c.Locals("user_id").(string)
	name, _ := c.Locals("name").(string)
	return domain.Actor{ID: userID, Name: name}
}
