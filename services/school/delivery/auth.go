package delivery

import (
	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"

	"schoolhub/config"
	"schoolhub/domain"
)

type authHandler struct {
	auc domain.AuthUseCase
}

func NewAuthDelivery(app *fiber.App, uc domain.AuthUseCase) {
	handler := &authHandler{
		auc: uc,
	}

	app.Post("/login", handler.Login)
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	var req domain.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(nil, fiber.StatusBadRequest, "Login")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid request body",
			"success": false,
		})
	}

	if _, err := govalidator.ValidateStruct(req); err != nil {
		config.PrintLogInfo(&req.Username, fiber.StatusBadRequest, "Login")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
		})
	}

	resp, err := h.auc.Login(c.Context(), &req)
	if err != nil {
		config.PrintLogInfo(&req.Username, fiber.StatusUnauthorized, "Login")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
		})
	}

	config.PrintLogInfo(&req.Username, fiber.StatusOK, "Login")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    resp,
		"message": "Login successful",
		"success": true,
	})
}
