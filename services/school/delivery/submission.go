package delivery

import (
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"

	"schoolhub/config"
	"schoolhub/domain"
	"schoolhub/middleware"
)

type submissionHandler struct {
	suc domain.SubmissionUseCase
}

func NewSubmissionDelivery(app *fiber.App, uc domain.SubmissionUseCase) {
	handler := &submissionHandler{
		suc: uc,
	}

	staff := []fiber.Handler{middleware.AuthRequired, middleware.RoleRequired("admin", "instructor")}

	folders := app.Group("/folders")
	folders.Post("/", append(staff, handler.CreateFolder)...)
	folders.Delete("/:id", append(staff, handler.DeleteFolder)...)

	submissions := app.Group("/submissions")
	submissions.Post("/", append(staff, handler.CreateSubmission)...)
	submissions.Put("/:id", append(staff, handler.UpdateSubmission)...)
	submissions.Delete("/:id", append(staff, handler.DeleteSubmission)...)
	submissions.Get("/:id", handler.GetSubmission)
	submissions.Get("/:id/grades", handler.ListStudentSubmissions)
	submissions.Post("/:id/grades/:student_id", append(staff, handler.RecordGrade)...)

	subjects := app.Group("/subjects/:id")
	subjects.Get("/folders", handler.GetFoldersBySubject)
	subjects.Get("/submissions", handler.GetSubmissionsBySubject)
}

func (h *submissionHandler) CreateFolder(c *fiber.Ctx) error {
	var folder domain.SubmissionFolder
	if err := c.BodyParser(&folder); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "CreateFolder")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid request body",
			"success": false,
		})
	}

	if _, err := govalidator.ValidateStruct(folder); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "CreateFolder")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
		})
	}

	if err := h.suc.CreateFolder(c.Context(), actorID(c), &folder); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "CreateFolder")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to create folder",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusCreated, "CreateFolder")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    folder,
		"message": "Folder created successfully",
		"success": true,
	})
}

func (h *submissionHandler) DeleteFolder(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "DeleteFolder")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid folder id",
			"success": false,
		})
	}

	if err := h.suc.DeleteFolder(c.Context(), actorID(c), id); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "DeleteFolder")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to delete folder",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "DeleteFolder")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Folder deleted successfully",
		"success": true,
	})
}

func (h *submissionHandler) GetFoldersBySubject(c *fiber.Ctx) error {
	subjectID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "GetFoldersBySubject")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid subject id",
			"success": false,
		})
	}

	folders, err := h.suc.GetFoldersBySubject(c.Context(), subjectID)
	if err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "GetFoldersBySubject")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to get folders",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "GetFoldersBySubject")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    folders,
		"message": "Folders retrieved successfully",
		"success": true,
	})
}

func (h *submissionHandler) CreateSubmission(c *fiber.Ctx) error {
	var submission domain.Submission
	if err := c.BodyParser(&submission); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "CreateSubmission")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid request body",
			"success": false,
		})
	}

	if err := h.suc.CreateSubmission(c.Context(), actorID(c), &submission, submission.Files); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "CreateSubmission")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to create submission",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusCreated, "CreateSubmission")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    submission,
		"message": "Submission created successfully",
		"success": true,
	})
}

// updateSubmissionRequest distinguishes an omitted files field (leave files
// untouched) from an empty list (delete all files).
type updateSubmissionRequest struct {
	FolderID    int                      `json:"folder_id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	DueDate     string                   `json:"due_date"`
	DueTime     string                   `json:"due_time"`
	MaxAttempts int                      `json:"max_attempts"`
	IsVisible   bool                     `json:"is_visible"`
	Files       *[]domain.SubmissionFile `json:"files"`
}

func (h *submissionHandler) UpdateSubmission(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "UpdateSubmission")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid submission id",
			"success": false,
		})
	}

	var req updateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "UpdateSubmission")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid request body",
			"success": false,
		})
	}

	submission := domain.Submission{
		SubmissionID: id,
		FolderID:     req.FolderID,
		Name:         req.Name,
		Description:  req.Description,
		DueDate:      req.DueDate,
		DueTime:      req.DueTime,
		MaxAttempts:  req.MaxAttempts,
		IsVisible:    req.IsVisible,
	}

	if err := h.suc.UpdateSubmission(c.Context(), actorID(c), &submission, req.Files); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "UpdateSubmission")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to update submission",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "UpdateSubmission")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Submission updated successfully",
		"success": true,
	})
}

func (h *submissionHandler) DeleteSubmission(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "DeleteSubmission")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid submission id",
			"success": false,
		})
	}

	if err := h.suc.DeleteSubmission(c.Context(), actorID(c), id); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "DeleteSubmission")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to delete submission",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "DeleteSubmission")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Submission deleted successfully",
		"success": true,
	})
}

func (h *submissionHandler) GetSubmission(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "GetSubmission")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid submission id",
			"success": false,
		})
	}

	submission, err := h.suc.GetSubmissionByID(c.Context(), id)
	if err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "GetSubmission")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to get submission",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "GetSubmission")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    submission,
		"message": "Submission retrieved successfully",
		"success": true,
	})
}

func (h *submissionHandler) GetSubmissionsBySubject(c *fiber.Ctx) error {
	subjectID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "GetSubmissionsBySubject")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid subject id",
			"success": false,
		})
	}

	includeHidden := c.Query("all") == "true"

	submissions, err := h.suc.GetSubmissionsBySubject(c.Context(), subjectID, includeHidden)
	if err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "GetSubmissionsBySubject")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to get submissions",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "GetSubmissionsBySubject")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    submissions,
		"message": "Submissions retrieved successfully",
		"success": true,
	})
}

type recordGradeRequest struct {
	Grade *float64 `json:"grade"`
}

func (h *submissionHandler) RecordGrade(c *fiber.Ctx) error {
	submissionID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "RecordGrade")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid submission id",
			"success": false,
		})
	}
	studentID, err := strconv.Atoi(c.Params("student_id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "RecordGrade")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid student id",
			"success": false,
		})
	}

	var req recordGradeRequest
	if err := c.BodyParser(&req); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "RecordGrade")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid request body",
			"success": false,
		})
	}

	if err := h.suc.RecordGrade(c.Context(), actorID(c), submissionID, studentID, req.Grade); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "RecordGrade")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to record grade",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "RecordGrade")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Grade recorded successfully",
		"success": true,
	})
}

func (h *submissionHandler) ListStudentSubmissions(c *fiber.Ctx) error {
	submissionID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "ListStudentSubmissions")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid submission id",
			"success": false,
		})
	}

	entries, err := h.suc.ListStudentSubmissions(c.Context(), submissionID)
	if err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "ListStudentSubmissions")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to get student submissions",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "ListStudentSubmissions")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    entries,
		"message": "Student submissions retrieved successfully",
		"success": true,
	})
}
