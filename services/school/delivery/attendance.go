package delivery

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"schoolhub/config"
	"schoolhub/domain"
	"schoolhub/middleware"
)

type attendanceHandler struct {
	auc domain.AttendanceUseCase
}

func NewAttendanceDelivery(app *fiber.App, uc domain.AttendanceUseCase) {
	handler := &attendanceHandler{
		auc: uc,
	}

	staff := []fiber.Handler{middleware.AuthRequired, middleware.RoleRequired("admin", "instructor")}

	subjects := app.Group("/subjects/:id")
	subjects.Post("/sessions", append(staff, handler.CreateSession)...)
	subjects.Get("/sessions", handler.GetSessionsBySubject)
	subjects.Get("/attendance-stats", handler.GetSubjectStats)

	sessions := app.Group("/sessions")
	sessions.Delete("/:id", append(staff, handler.DeleteSession)...)
	sessions.Get("/:id/records", handler.ListRecords)
	sessions.Put("/:id/records/:student_id", append(staff, handler.UpdateRecordStatus)...)
	sessions.Get("/:id/stats", handler.GetSessionStats)
}

type createSessionRequest struct {
	SessionDate string              `json:"session_date"`
	SessionTime string              `json:"session_time"`
	IsVisible   *bool               `json:"is_visible"`
	Marks       []domain.RosterMark `json:"marks"`
}

func (h *attendanceHandler) CreateSession(c *fiber.Ctx) error {
	subjectID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "CreateSession")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid subject id",
			"success": false,
		})
	}

	var req createSessionRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "CreateSession")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid request body",
			"success": false,
		})
	}

	session := domain.AttendanceSession{
		SubjectID:   subjectID,
		SessionDate: req.SessionDate,
		SessionTime: req.SessionTime,
		IsVisible:   true,
	}
	if req.IsVisible != nil {
		session.IsVisible = *req.IsVisible
	}

	if err := h.auc.CreateSession(c.Context(), actorID(c), &session, req.Marks); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "CreateSession")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to create attendance session",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusCreated, "CreateSession")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    session,
		"message": "Attendance session created successfully",
		"success": true,
	})
}

func (h *attendanceHandler) GetSessionsBySubject(c *fiber.Ctx) error {
	subjectID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "GetSessionsBySubject")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid subject id",
			"success": false,
		})
	}

	includeHidden := c.Query("all") == "true"

	sessions, err := h.auc.GetSessionsBySubject(c.Context(), subjectID, includeHidden)
	if err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "GetSessionsBySubject")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to get attendance sessions",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "GetSessionsBySubject")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    sessions,
		"message": "Attendance sessions retrieved successfully",
		"success": true,
	})
}

func (h *attendanceHandler) DeleteSession(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "DeleteSession")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid session id",
			"success": false,
		})
	}

	if err := h.auc.DeleteSession(c.Context(), actorID(c), id); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "DeleteSession")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to delete attendance session",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "DeleteSession")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Attendance session deleted successfully",
		"success": true,
	})
}

type updateRecordRequest struct {
	Status domain.AttendanceStatus `json:"status"`
}

func (h *attendanceHandler) UpdateRecordStatus(c *fiber.Ctx) error {
	sessionID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "UpdateRecordStatus")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid session id",
			"success": false,
		})
	}
	studentID, err := strconv.Atoi(c.Params("student_id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "UpdateRecordStatus")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid student id",
			"success": false,
		})
	}

	var req updateRecordRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "UpdateRecordStatus")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid request body",
			"success": false,
		})
	}

	if err := h.auc.UpdateRecordStatus(c.Context(), actorID(c), sessionID, studentID, req.Status); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "UpdateRecordStatus")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to update attendance record",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "UpdateRecordStatus")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Attendance record updated successfully",
		"success": true,
	})
}

func (h *attendanceHandler) ListRecords(c *fiber.Ctx) error {
	sessionID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "ListRecords")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid session id",
			"success": false,
		})
	}

	records, err := h.auc.ListRecords(c.Context(), sessionID)
	if err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "ListRecords")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to get attendance records",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "ListRecords")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    records,
		"message": "Attendance records retrieved successfully",
		"success": true,
	})
}

func (h *attendanceHandler) GetSessionStats(c *fiber.Ctx) error {
	sessionID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "GetSessionStats")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid session id",
			"success": false,
		})
	}

	stats, err := h.auc.GetSessionStats(c.Context(), sessionID)
	if err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "GetSessionStats")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to get session stats",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "GetSessionStats")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    stats,
		"message": "Session stats retrieved successfully",
		"success": true,
	})
}

func (h *attendanceHandler) GetSubjectStats(c *fiber.Ctx) error {
	subjectID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "GetSubjectStats")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid subject id",
			"success": false,
		})
	}

	stats, err := h.auc.GetSubjectStats(c.Context(), subjectID)
	if err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "GetSubjectStats")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to get subject attendance stats",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "GetSubjectStats")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    stats,
		"message": "Subject attendance stats retrieved successfully",
		"success": true,
	})
}
