package delivery

import (
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/gofiber/fiber/v2"

	"schoolhub/config"
	"schoolhub/domain"
	"schoolhub/middleware"
)

type hierarchyHandler struct {
	huc domain.HierarchyUseCase
}

func NewHierarchyDelivery(app *fiber.App, uc domain.HierarchyUseCase) {
	handler := &hierarchyHandler{
		huc: uc,
	}

	admin := []fiber.Handler{middleware.AuthRequired, middleware.RoleRequired("admin")}

	years := app.Group("/years")
	years.Get("/", handler.GetAllSchoolYears)
	years.Get("/:id/semesters", handler.GetSemestersByYear)
	years.Post("/", append(admin, handler.CreateSchoolYear)...)
	years.Put("/:id", append(admin, handler.UpdateSchoolYear)...)
	years.Delete("/:id", append(admin, handler.DeleteSchoolYear)...)

	semesters := app.Group("/semesters")
	semesters.Get("/:id/grade-levels", handler.GetGradeLevelsBySemester)
	semesters.Post("/", append(admin, handler.CreateSemester)...)
	semesters.Put("/:id", append(admin, handler.UpdateSemester)...)
	semesters.Delete("/:id", append(admin, handler.DeleteSemester)...)

	levels := app.Group("/grade-levels")
	levels.Get("/:id/sections", handler.GetSectionsByGradeLevel)
	levels.Post("/", append(admin, handler.CreateGradeLevel)...)
	levels.Put("/:id", append(admin, handler.UpdateGradeLevel)...)
	levels.Delete("/:id", append(admin, handler.DeleteGradeLevel)...)

	sections := app.Group("/sections")
	sections.Get("/:id/subjects", handler.GetSubjectsBySection)
	sections.Post("/", append(admin, handler.CreateSection)...)
	sections.Put("/:id", append(admin, handler.UpdateSection)...)
	sections.Delete("/:id", append(admin, handler.DeleteSection)...)

	subjects := app.Group("/subjects")
	subjects.Get("/:id", handler.GetSubjectByID)
	subjects.Post("/", append(admin, handler.CreateSubject)...)
	subjects.Put("/:id", append(admin, handler.UpdateSubject)...)
	subjects.Delete("/:id", append(admin, handler.DeleteSubject)...)
}

func (h *hierarchyHandler) CreateSchoolYear(c *fiber.Ctx) error {
	var payload domain.SchoolYear
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "CreateSchoolYear")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "parsing failure",
			"success": false,
		})
	}
	if _, err := govalidator.ValidateStruct(&payload); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "CreateSchoolYear")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
		})
	}

	if err := h.huc.CreateSchoolYear(c.Context(), actorID(c), &payload); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "CreateSchoolYear")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to create school year",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusCreated, "CreateSchoolYear")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    payload,
		"message": "School year created successfully",
		"success": true,
	})
}

func (h *hierarchyHandler) UpdateSchoolYear(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "UpdateSchoolYear")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid school year id",
			"success": false,
		})
	}

	var payload domain.SchoolYear
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "UpdateSchoolYear")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "parsing failure",
			"success": false,
		})
	}
	payload.SchoolYearID = id
	if _, err := govalidator.ValidateStruct(&payload); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "UpdateSchoolYear")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
		})
	}

	if err := h.huc.UpdateSchoolYear(c.Context(), actorID(c), &payload); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "UpdateSchoolYear")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to update school year",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "UpdateSchoolYear")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "School year updated successfully",
		"success": true,
	})
}

func (h *hierarchyHandler) DeleteSchoolYear(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "DeleteSchoolYear")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid school year id",
			"success": false,
		})
	}

	if err := h.huc.DeleteSchoolYear(c.Context(), actorID(c), id); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "DeleteSchoolYear")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to delete school year",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "DeleteSchoolYear")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "School year and all descendants deleted",
		"success": true,
	})
}

func (h *hierarchyHandler) GetAllSchoolYears(c *fiber.Ctx) error {
	years, err := h.huc.GetAllSchoolYears(c.Context())
	if err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "GetAllSchoolYears")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to get school years",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "GetAllSchoolYears")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    years,
		"message": "School years retrieved successfully",
		"success": true,
	})
}

func (h *hierarchyHandler) CreateSemester(c *fiber.Ctx) error {
	var payload domain.Semester
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "CreateSemester")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "parsing failure",
			"success": false,
		})
	}
	if _, err := govalidator.ValidateStruct(&payload); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "CreateSemester")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
		})
	}

	if err := h.huc.CreateSemester(c.Context(), actorID(c), &payload); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "CreateSemester")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to create semester",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusCreated, "CreateSemester")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    payload,
		"message": "Semester created successfully",
		"success": true,
	})
}

func (h *hierarchyHandler) UpdateSemester(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "UpdateSemester")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid semester id",
			"success": false,
		})
	}

	var payload domain.Semester
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "UpdateSemester")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "parsing failure",
			"success": false,
		})
	}
	payload.SemesterID = id
	if _, err := govalidator.ValidateStruct(&payload); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "UpdateSemester")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
		})
	}

	if err := h.huc.UpdateSemester(c.Context(), actorID(c), &payload); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "UpdateSemester")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to update semester",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "UpdateSemester")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Semester updated successfully",
		"success": true,
	})
}

func (h *hierarchyHandler) DeleteSemester(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "DeleteSemester")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid semester id",
			"success": false,
		})
	}

	if err := h.huc.DeleteSemester(c.Context(), actorID(c), id); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "DeleteSemester")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to delete semester",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "DeleteSemester")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Semester and all descendants deleted",
		"success": true,
	})
}

func (h *hierarchyHandler) GetSemestersByYear(c *fiber.Ctx) error {
	yearID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "GetSemestersByYear")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid school year id",
			"success": false,
		})
	}

	semesters, err := h.huc.GetSemestersByYear(c.Context(), yearID)
	if err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "GetSemestersByYear")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to get semesters",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "GetSemestersByYear")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    semesters,
		"message": "Semesters retrieved successfully",
		"success": true,
	})
}

func (h *hierarchyHandler) CreateGradeLevel(c *fiber.Ctx) error {
	var payload domain.GradeLevel
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "CreateGradeLevel")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "parsing failure",
			"success": false,
		})
	}
	if _, err := govalidator.ValidateStruct(&payload); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "CreateGradeLevel")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
		})
	}

	if err := h.huc.CreateGradeLevel(c.Context(), actorID(c), &payload); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "CreateGradeLevel")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to create grade level",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusCreated, "CreateGradeLevel")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    payload,
		"message": "Grade level created successfully",
		"success": true,
	})
}

func (h *hierarchyHandler) UpdateGradeLevel(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "UpdateGradeLevel")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid grade level id",
			"success": false,
		})
	}

	var payload domain.GradeLevel
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "UpdateGradeLevel")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "parsing failure",
			"success": false,
		})
	}
	payload.GradeLevelID = id
	if _, err := govalidator.ValidateStruct(&payload); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "UpdateGradeLevel")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
		})
	}

	if err := h.huc.UpdateGradeLevel(c.Context(), actorID(c), &payload); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "UpdateGradeLevel")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to update grade level",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "UpdateGradeLevel")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Grade level updated successfully",
		"success": true,
	})
}

func (h *hierarchyHandler) DeleteGradeLevel(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "DeleteGradeLevel")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid grade level id",
			"success": false,
		})
	}

	if err := h.huc.DeleteGradeLevel(c.Context(), actorID(c), id); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "DeleteGradeLevel")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to delete grade level",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "DeleteGradeLevel")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Grade level and all descendants deleted",
		"success": true,
	})
}

func (h *hierarchyHandler) GetGradeLevelsBySemester(c *fiber.Ctx) error {
	semesterID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "GetGradeLevelsBySemester")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid semester id",
			"success": false,
		})
	}

	levels, err := h.huc.GetGradeLevelsBySemester(c.Context(), semesterID)
	if err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "GetGradeLevelsBySemester")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to get grade levels",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "GetGradeLevelsBySemester")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    levels,
		"message": "Grade levels retrieved successfully",
		"success": true,
	})
}

func (h *hierarchyHandler) CreateSection(c *fiber.Ctx) error {
	var payload domain.Section
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "CreateSection")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "parsing failure",
			"success": false,
		})
	}
	if _, err := govalidator.ValidateStruct(&payload); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "CreateSection")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
		})
	}

	if err := h.huc.CreateSection(c.Context(), actorID(c), &payload); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "CreateSection")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to create section",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusCreated, "CreateSection")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    payload,
		"message": "Section created successfully",
		"success": true,
	})
}

func (h *hierarchyHandler) UpdateSection(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "UpdateSection")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid section id",
			"success": false,
		})
	}

	var payload domain.Section
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "UpdateSection")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "parsing failure",
			"success": false,
		})
	}
	payload.SectionID = id
	if _, err := govalidator.ValidateStruct(&payload); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "UpdateSection")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
		})
	}

	if err := h.huc.UpdateSection(c.Context(), actorID(c), &payload); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "UpdateSection")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to update section",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "UpdateSection")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Section updated successfully",
		"success": true,
	})
}

func (h *hierarchyHandler) DeleteSection(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "DeleteSection")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid section id",
			"success": false,
		})
	}

	if err := h.huc.DeleteSection(c.Context(), actorID(c), id); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "DeleteSection")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to delete section",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "DeleteSection")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Section and all descendants deleted",
		"success": true,
	})
}

func (h *hierarchyHandler) GetSectionsByGradeLevel(c *fiber.Ctx) error {
	levelID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "GetSectionsByGradeLevel")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid grade level id",
			"success": false,
		})
	}

	sections, err := h.huc.GetSectionsByGradeLevel(c.Context(), levelID)
	if err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "GetSectionsByGradeLevel")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to get sections",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "GetSectionsByGradeLevel")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    sections,
		"message": "Sections retrieved successfully",
		"success": true,
	})
}

func (h *hierarchyHandler) CreateSubject(c *fiber.Ctx) error {
	var payload domain.Subject
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "CreateSubject")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "parsing failure",
			"success": false,
		})
	}
	if _, err := govalidator.ValidateStruct(&payload); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "CreateSubject")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
		})
	}

	if err := h.huc.CreateSubject(c.Context(), actorID(c), &payload); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "CreateSubject")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to create subject",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusCreated, "CreateSubject")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data":    payload,
		"message": "Subject created successfully",
		"success": true,
	})
}

func (h *hierarchyHandler) UpdateSubject(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "UpdateSubject")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid subject id",
			"success": false,
		})
	}

	var payload domain.Subject
	if err := c.BodyParser(&payload); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "UpdateSubject")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "parsing failure",
			"success": false,
		})
	}
	payload.SubjectID = id
	if _, err := govalidator.ValidateStruct(&payload); err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "UpdateSubject")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   err.Error(),
			"success": false,
		})
	}

	if err := h.huc.UpdateSubject(c.Context(), actorID(c), &payload); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "UpdateSubject")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to update subject",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "UpdateSubject")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Subject updated successfully",
		"success": true,
	})
}

func (h *hierarchyHandler) DeleteSubject(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "DeleteSubject")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid subject id",
			"success": false,
		})
	}

	if err := h.huc.DeleteSubject(c.Context(), actorID(c), id); err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "DeleteSubject")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to delete subject",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "DeleteSubject")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Subject and all descendants deleted",
		"success": true,
	})
}

func (h *hierarchyHandler) GetSubjectsBySection(c *fiber.Ctx) error {
	sectionID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "GetSubjectsBySection")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid section id",
			"success": false,
		})
	}

	subjects, err := h.huc.GetSubjectsBySection(c.Context(), sectionID)
	if err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "GetSubjectsBySection")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to get subjects",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "GetSubjectsBySection")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    subjects,
		"message": "Subjects retrieved successfully",
		"success": true,
	})
}

func (h *hierarchyHandler) GetSubjectByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		config.PrintLogInfo(actorName(c), fiber.StatusBadRequest, "GetSubjectByID")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "invalid subject id",
			"success": false,
		})
	}

	subject, err := h.huc.GetSubjectByID(c.Context(), id)
	if err != nil {
		status := failStatus(err)
		config.PrintLogInfo(actorName(c), status, "GetSubjectByID")
		return c.Status(status).JSON(fiber.Map{
			"error":   err.Error(),
			"message": "Failed to get subject",
			"success": false,
		})
	}

	config.PrintLogInfo(actorName(c), fiber.StatusOK, "GetSubjectByID")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    subject,
		"message": "Subject retrieved successfully",
		"success": true,
	})
}
