package delivery

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"schoolhub/config"
	"schoolhub/domain"
	"schoolhub/middleware"
)

type personHandler struct {
	puc domain.PersonUseCase
}

func NewPersonDelivery(app *fiber.App, uc domain.PersonUseCase) {
	handler := &personHandler{
		puc: uc,
	}

	people := app.Group("/people", middleware.AuthRequired)
	people.Get("/", handler.GetPeopleByRole)
	people.Get("/:id", handler.GetPerson)
}

func (h *personHandler) GetPerson(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "GetPerson")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid person id",
			"success": false,
		})
	}

	person, err := h.puc.GetPerson(c.Context(), id)
	if err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "GetPerson")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to get person",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "GetPerson")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    person,
		"message": "Person retrieved successfully",
		"success": true,
	})
}

func (h *personHandler) GetPeopleByRole(c *fiber.Ctx) error {
	role := domain.Role(c.Query("role", string(domain.RoleStudent)))

	people, err := h.puc.GetPeopleByRole(c.Context(), role)
	if err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "GetPeopleByRole")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to get people",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "GetPeopleByRole")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    people,
		"message": "People retrieved successfully",
		"success": true,
	})
}
