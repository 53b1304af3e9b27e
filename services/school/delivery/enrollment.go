package delivery

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"schoolhub/config"
	"schoolhub/domain"
	"schoolhub/middleware"
)

type enrollmentHandler struct {
	euc domain.EnrollmentUseCase
}

func NewEnrollmentDelivery(app *fiber.App, uc domain.EnrollmentUseCase) {
	handler := &enrollmentHandler{
		euc: uc,
	}

	staff := []fiber.Handler{middleware.AuthRequired, middleware.RoleRequired("admin", "instructor")}

	group := app.Group("/subjects/:id")
	group.Get("/instructors", handler.ListInstructors)
	group.Get("/students", handler.ListStudents)
	group.Post("/instructors/:person_id", append(staff, handler.AssignInstructor)...)
	group.Delete("/instructors/:person_id", append(staff, handler.RemoveInstructor)...)
	group.Post("/students/:person_id", append(staff, handler.AssignStudent)...)
	group.Delete("/students/:person_id", append(staff, handler.RemoveStudent)...)
}

func pairParams(c *fiber.Ctx) (int, int, error) {
	subjectID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, 0, err
	}
	personID, err := strconv.Atoi(c.Params("person_id"))
	if err != nil {
		return 0, 0, err
	}
	return subjectID, personID, nil
}

func (h *enrollmentHandler) AssignInstructor(c *fiber.Ctx) error {
	subjectID, instructorID, err := pairParams(c)
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "AssignInstructor")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid subject or person id",
			"success": false,
		})
	}

	if err := h.euc.AssignInstructor(c.Context(), actorID(c), subjectID, instructorID); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "AssignInstructor")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to assign instructor",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusCreated, "AssignInstructor")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Instructor assigned successfully",
		"success": true,
	})
}

func (h *enrollmentHandler) AssignStudent(c *fiber.Ctx) error {
	subjectID, studentID, err := pairParams(c)
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "AssignStudent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid subject or person id",
			"success": false,
		})
	}

	if err := h.euc.AssignStudent(c.Context(), actorID(c), subjectID, studentID); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "AssignStudent")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to enroll student",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusCreated, "AssignStudent")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Student enrolled successfully",
		"success": true,
	})
}

func (h *enrollmentHandler) RemoveInstructor(c *fiber.Ctx) error {
	subjectID, instructorID, err := pairParams(c)
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "RemoveInstructor")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid subject or person id",
			"success": false,
		})
	}

	if err := h.euc.RemoveInstructor(c.Context(), actorID(c), subjectID, instructorID); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "RemoveInstructor")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to remove instructor",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "RemoveInstructor")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Instructor removed successfully",
		"success": true,
	})
}

func (h *enrollmentHandler) RemoveStudent(c *fiber.Ctx) error {
	subjectID, studentID, err := pairParams(c)
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "RemoveStudent")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid subject or person id",
			"success": false,
		})
	}

	if err := h.euc.RemoveStudent(c.Context(), actorID(c), subjectID, studentID); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "RemoveStudent")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to remove student",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "RemoveStudent")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Student removed successfully",
		"success": true,
	})
}

func (h *enrollmentHandler) ListInstructors(c *fiber.Ctx) error {
	subjectID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "ListInstructors")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid subject id",
			"success": false,
		})
	}

	entries, err := h.euc.ListInstructors(c.Context(), subjectID)
	if err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "ListInstructors")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to get instructor roster",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "ListInstructors")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    entries,
		"message": "Instructor roster retrieved successfully",
		"success": true,
	})
}

func (h *enrollmentHandler) ListStudents(c *fiber.Ctx) error {
	subjectID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "ListStudents")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid subject id",
			"success": false,
		})
	}

	entries, err := h.euc.ListStudents(c.Context(), subjectID)
	if err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "ListStudents")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to get student roster",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "ListStudents")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    entries,
		"message": "Student roster retrieved successfully",
		"success": true,
	})
}
