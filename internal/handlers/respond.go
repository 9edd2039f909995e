package handlers

import (
	"errors"

	"boutique/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// respondError converts a service error into the uniform failure body,
// mapping the sentinel taxonomy onto HTTP status codes.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		status = fiber.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	case errors.Is(err, apperrors.ErrNotFound):
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}
