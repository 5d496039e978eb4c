// error_utils.go
package utils

import (
	"Backend-QuestForge/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleServiceError maps a typed service error to its HTTP status. Errors
// are surfaced unmodified; there is no recovery here.
func HandleServiceError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case IsNotFound(err):
		status = fiber.StatusNotFound
	case IsValidation(err):
		status = fiber.StatusBadRequest
	}
	return HandleError(c, status, err.Error())
}
