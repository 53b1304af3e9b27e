package delivery

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"schoolhub/config"
	"schoolhub/domain"
)

type gradeStatsHandler struct {
	guc domain.GradeStatsUseCase
}

func NewGradeStatsDelivery(app *fiber.App, uc domain.GradeStatsUseCase) {
	handler := &gradeStatsHandler{
		guc: uc,
	}

	app.Get("/subjects/:id/grade-stats", handler.GetSubjectGradeStats)
}

func (h *gradeStatsHandler) GetSubjectGradeStats(c *fiber.Ctx) error {
	subjectID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "GetSubjectGradeStats")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid subject id",
			"success": false,
		})
	}

	stats, err := h.guc.GetSubjectGradeStats(c.Context(), subjectID)
	if err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "GetSubjectGradeStats")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to get subject grade stats",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "GetSubjectGradeStats")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    stats,
		"message": "Subject grade stats retrieved successfully",
		"success": true,
	})
}
