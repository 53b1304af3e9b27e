package delivery

import (
	"github.com/gofiber/fiber/v2"

	"schoolhub/domain"
)

// failStatus maps the error taxonomy onto transport status codes.
func failStatus(err error) int {
	switch {
	case domain.IsValidation(err):
		return fiber.StatusBadRequest
	case domain.IsNotFound(err):
		return fiber.StatusNotFound
	case domain.IsDuplicate(err):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func actorID(c *fiber.Ctx) int {
	id, _ := c.Locals("user_id").(int)
	return id
}

func actorName(c *fiber.Ctx) *string {
	if s, ok := c.Locals("username").(string); ok {
		return &s
	}
	return nil
}
