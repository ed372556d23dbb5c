package handlers

import (
	"errors"

	"elektronik/internal/models"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps a service error to the HTTP status the API contract
// promises: 400 for bad input, 404 for unknown ids, 409 for conflicts, and
// 500 for anything the caller cannot fix.
func statusForError(err error) int {
	var (
		validationErr    *models.ValidationError
		invalidStatusErr *models.InvalidStatusError
		stockErr         *models.InsufficientStockError
		conflictErr      *models.ConflictError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &invalidStatusErr), errors.As(err, &stockErr):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &conflictErr):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// errorResponse renders err as a JSON body with the mapped status code.
func errorResponse(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	body := fiber.Map{"message": err.Error()}
	if status == fiber.StatusInternalServerError {
		// Don't leak storage internals to the caller.
		body = fiber.Map{"message": "internal server error"}
	}
	return c.Status(status).JSON(body)
}
