package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"schoolhub/domain"
)

type hierarchyRepository struct {
	db *gorm.DB
}

func NewHierarchyRepository(database *gorm.DB) domain.HierarchyRepo {
	return &hierarchyRepository{
		db: database,
	}
}

// ---- school years ----

func (hr *hierarchyRepository) CreateSchoolYear(ctx context.Context, year *domain.SchoolYear) error {
	if err := hr.db.WithContext(ctx).Create(year).Error; err != nil {
		return translateError("create school year", "school year", err)
	}
	return nil
}

func (hr *hierarchyRepository) UpdateSchoolYear(ctx context.Context, year *domain.SchoolYear) error {
	res := hr.db.WithContext(ctx).Model(&domain.SchoolYear{}).
		Where("school_year_id = ?", year.SchoolYearID).
		Updates(map[string]interface{}{
			"year_label": year.YearLabel,
			"is_active":  year.IsActive,
		})
	if res.Error != nil {
		return translateError("update school year", "school year", res.Error)
	}
	if res.RowsAffected == 0 {
		return &domain.NotFoundError{Entity: "school year", ID: year.SchoolYearID}
	}
	return nil
}

func (hr *hierarchyRepository) GetAllSchoolYears(ctx context.Context) (*[]domain.SchoolYearWithCount, error) {
	var years []domain.SchoolYearWithCount

	countSub := hr.db.Model(&domain.Semester{}).
		Select("COUNT(*)").
		Where("semesters.school_year_id = school_years.school_year_id")

	err := hr.db.WithContext(ctx).Model(&domain.SchoolYear{}).
		Select("school_years.*, (?) AS semester_count", countSub).
		Order("year_label DESC").
		Find(&years).Error
	if err != nil {
		return nil, translateError("list school years", "school year", err)
	}
	return &years, nil
}

func (hr *hierarchyRepository) GetSchoolYearByID(ctx context.Context, id int) (*domain.SchoolYear, error) {
	var year domain.SchoolYear
	err := hr.db.WithContext(ctx).First(&year, "school_year_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "school year", ID: id}
		}
		return nil, translateError("get school year", "school year", err)
	}
	return &year, nil
}

func (hr *hierarchyRepository) DeleteSchoolYear(ctx context.Context, id int) error {
	return hr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var year domain.SchoolYear
		if err := tx.First(&year, "school_year_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &domain.NotFoundError{Entity: "school year", ID: id}
			}
			return translateError("delete school year", "school year", err)
		}

		var semesterIDs []int
		if err := tx.Model(&domain.Semester{}).Where("school_year_id = ?", id).
			Pluck("semester_id", &semesterIDs).Error; err != nil {
			return translateError("delete school year", "school year", err)
		}
		if err := hr.cascadeSemesters(tx, semesterIDs); err != nil {
			return err
		}

		if err := tx.Delete(&domain.SchoolYear{}, "school_year_id = ?", id).Error; err != nil {
			return translateError("delete school year", "school year", err)
		}
		return nil
	})
}

// ---- semesters ----

func (hr *hierarchyRepository) CreateSemester(ctx context.Context, semester *domain.Semester) error {
	if err := hr.db.WithContext(ctx).Create(semester).Error; err != nil {
		return translateError("create semester", "semester", err)
	}
	return nil
}

func (hr *hierarchyRepository) UpdateSemester(ctx context.Context, semester *domain.Semester) error {
	res := hr.db.WithContext(ctx).Model(&domain.Semester{}).
		Where("semester_id = ?", semester.SemesterID).
		Updates(map[string]interface{}{"name": semester.Name})
	if res.Error != nil {
		return translateError("update semester", "semester", res.Error)
	}
	if res.RowsAffected == 0 {
		return &domain.NotFoundError{Entity: "semester", ID: semester.SemesterID}
	}
	return nil
}

func (hr *hierarchyRepository) GetSemestersByYear(ctx context.Context, yearID int) (*[]domain.SemesterWithCount, error) {
	var semesters []domain.SemesterWithCount

	countSub := hr.db.Model(&domain.GradeLevel{}).
		Select("COUNT(*)").
		Where("grade_levels.semester_id = semesters.semester_id")

	err := hr.db.WithContext(ctx).Model(&domain.Semester{}).
		Select("semesters.*, (?) AS grade_level_count", countSub).
		Where("school_year_id = ?", yearID).
		Order("name ASC").
		Find(&semesters).Error
	if err != nil {
		return nil, translateError("list semesters", "semester", err)
	}
	return &semesters, nil
}

func (hr *hierarchyRepository) GetSemesterByID(ctx context.Context, id int) (*domain.Semester, error) {
	var semester domain.Semester
	err := hr.db.WithContext(ctx).First(&semester, "semester_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "semester", ID: id}
		}
		return nil, translateError("get semester", "semester", err)
	}
	return &semester, nil
}

func (hr *hierarchyRepository) DeleteSemester(ctx context.Context, id int) error {
	return hr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var semester domain.Semester
		if err := tx.First(&semester, "semester_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &domain.NotFoundError{Entity: "semester", ID: id}
			}
			return translateError("delete semester", "semester", err)
		}
		return hr.cascadeSemesters(tx, []int{id})
	})
}

// ---- grade levels ----

func (hr *hierarchyRepository) CreateGradeLevel(ctx context.Context, level *domain.GradeLevel) error {
	if err := hr.db.WithContext(ctx).Create(level).Error; err != nil {
		return translateError("create grade level", "grade level", err)
	}
	return nil
}

func (hr *hierarchyRepository) UpdateGradeLevel(ctx context.Context, level *domain.GradeLevel) error {
	res := hr.db.WithContext(ctx).Model(&domain.GradeLevel{}).
		Where("grade_level_id = ?", level.GradeLevelID).
		Updates(map[string]interface{}{"name": level.Name})
	if res.Error != nil {
		return translateError("update grade level", "grade level", res.Error)
	}
	if res.RowsAffected == 0 {
		return &domain.NotFoundError{Entity: "grade level", ID: level.GradeLevelID}
	}
	return nil
}

func (hr *hierarchyRepository) GetGradeLevelsBySemester(ctx context.Context, semesterID int) (*[]domain.GradeLevelWithCount, error) {
	var levels []domain.GradeLevelWithCount

	countSub := hr.db.Model(&domain.Section{}).
		Select("COUNT(*)").
		Where("sections.grade_level_id = grade_levels.grade_level_id")

	err := hr.db.WithContext(ctx).Model(&domain.GradeLevel{}).
		Select("grade_levels.*, (?) AS section_count", countSub).
		Where("semester_id = ?", semesterID).
		Order("name ASC").
		Find(&levels).Error
	if err != nil {
		return nil, translateError("list grade levels", "grade level", err)
	}
	return &levels, nil
}

func (hr *hierarchyRepository) GetGradeLevelByID(ctx context.Context, id int) (*domain.GradeLevel, error) {
	var level domain.GradeLevel
	err := hr.db.WithContext(ctx).First(&level, "grade_level_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "grade level", ID: id}
		}
		return nil, translateError("get grade level", "grade level", err)
	}
	return &level, nil
}

func (hr *hierarchyRepository) DeleteGradeLevel(ctx context.Context, id int) error {
	return hr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var level domain.GradeLevel
		if err := tx.First(&level, "grade_level_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &domain.NotFoundError{Entity: "grade level", ID: id}
			}
			return translateError("delete grade level", "grade level", err)
		}
		return hr.cascadeGradeLevels(tx, []int{id})
	})
}

// ---- sections ----

func (hr *hierarchyRepository) CreateSection(ctx context.Context, section *domain.Section) error {
	if err := hr.db.WithContext(ctx).Create(section).Error; err != nil {
		return translateError("create section", "section", err)
	}
	return nil
}

func (hr *hierarchyRepository) UpdateSection(ctx context.Context, section *domain.Section) error {
	res := hr.db.WithContext(ctx).Model(&domain.Section{}).
		Where("section_id = ?", section.SectionID).
		Updates(map[string]interface{}{"name": section.Name})
	if res.Error != nil {
		return translateError("update section", "section", res.Error)
	}
	if res.RowsAffected == 0 {
		return &domain.NotFoundError{Entity: "section", ID: section.SectionID}
	}
	return nil
}

func (hr *hierarchyRepository) GetSectionsByGradeLevel(ctx context.Context, gradeLevelID int) (*[]domain.SectionWithCount, error) {
	var sections []domain.SectionWithCount

	countSub := hr.db.Model(&domain.Subject{}).
		Select("COUNT(*)").
		Where("subjects.section_id = sections.section_id")

	err := hr.db.WithContext(ctx).Model(&domain.Section{}).
		Select("sections.*, (?) AS subject_count", countSub).
		Where("grade_level_id = ?", gradeLevelID).
		Order("name ASC").
		Find(&sections).Error
	if err != nil {
		return nil, translateError("list sections", "section", err)
	}
	return &sections, nil
}

func (hr *hierarchyRepository) GetSectionByID(ctx context.Context, id int) (*domain.Section, error) {
	var section domain.Section
	err := hr.db.WithContext(ctx).First(&section, "section_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "section", ID: id}
		}
		return nil, translateError("get section", "section", err)
	}
	return &section, nil
}

func (hr *hierarchyRepository) DeleteSection(ctx context.Context, id int) error {
	return hr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var section domain.Section
		if err := tx.First(&section, "section_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &domain.NotFoundError{Entity: "section", ID: id}
			}
			return translateError("delete section", "section", err)
		}
		return hr.cascadeSections(tx, []int{id})
	})
}

// ---- subjects ----

func (hr *hierarchyRepository) CreateSubject(ctx context.Context, subject *domain.Subject) error {
	if err := hr.db.WithContext(ctx).Create(subject).Error; err != nil {
		return translateError("create subject", "subject", err)
	}
	return nil
}

func (hr *hierarchyRepository) UpdateSubject(ctx context.Context, subject *domain.Subject) error {
	res := hr.db.WithContext(ctx).Model(&domain.Subject{}).
		Where("subject_id = ?", subject.SubjectID).
		Updates(map[string]interface{}{
			"name": subject.Name,
			"code": subject.Code,
		})
	if res.Error != nil {
		return translateError("update subject", "subject", res.Error)
	}
	if res.RowsAffected == 0 {
		return &domain.NotFoundError{Entity: "subject", ID: subject.SubjectID}
	}
	return nil
}

func (hr *hierarchyRepository) GetSubjectsBySection(ctx context.Context, sectionID int) (*[]domain.SubjectWithCount, error) {
	var subjects []domain.SubjectWithCount

	studentSub := hr.db.Model(&domain.SubjectStudent{}).
		Select("COUNT(*)").
		Where("subject_students.subject_id = subjects.subject_id")
	instructorSub := hr.db.Model(&domain.SubjectInstructor{}).
		Select("COUNT(*)").
		Where("subject_instructors.subject_id = subjects.subject_id")

	err := hr.db.WithContext(ctx).Model(&domain.Subject{}).
		Select("subjects.*, (?) AS student_count, (?) AS instructor_count", studentSub, instructorSub).
		Where("section_id = ?", sectionID).
		Order("name ASC").
		Find(&subjects).Error
	if err != nil {
		return nil, translateError("list subjects", "subject", err)
	}
	return &subjects, nil
}

func (hr *hierarchyRepository) GetSubjectByID(ctx context.Context, id int) (*domain.Subject, error) {
	var subject domain.Subject
	err := hr.db.WithContext(ctx).First(&subject, "subject_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "subject", ID: id}
		}
		return nil, translateError("get subject", "subject", err)
	}
	return &subject, nil
}

func (hr *hierarchyRepository) DeleteSubject(ctx context.Context, id int) error {
	return hr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var subject domain.Subject
		if err := tx.First(&subject, "subject_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &domain.NotFoundError{Entity: "subject", ID: id}
			}
			return translateError("delete subject", "subject", err)
		}
		return hr.cascadeSubjects(tx, []int{id})
	})
}

// ---- cascades ----
//
// Deletion is children-first inside the caller's transaction:
// attendance records -> sessions, student submissions -> files -> submissions
// -> folders, enrollment rows, then the subject itself, then the containers
// bottom-up (subjects -> sections -> grade levels -> semesters).

func (hr *hierarchyRepository) cascadeSemesters(tx *gorm.DB, semesterIDs []int) error {
	if len(semesterIDs) == 0 {
		return nil
	}
	var levelIDs []int
	if err := tx.Model(&domain.GradeLevel{}).Where("semester_id IN ?", semesterIDs).
		Pluck("grade_level_id", &levelIDs).Error; err != nil {
		return translateError("cascade semesters", "semester", err)
	}
	if err := hr.cascadeGradeLevels(tx, levelIDs); err != nil {
		return err
	}
	if err := tx.Where("semester_id IN ?", semesterIDs).Delete(&domain.Semester{}).Error; err != nil {
		return translateError("cascade semesters", "semester", err)
	}
	return nil
}

func (hr *hierarchyRepository) cascadeGradeLevels(tx *gorm.DB, levelIDs []int) error {
	if len(levelIDs) == 0 {
		return nil
	}
	var sectionIDs []int
	if err := tx.Model(&domain.Section{}).Where("grade_level_id IN ?", levelIDs).
		Pluck("section_id", &sectionIDs).Error; err != nil {
		return translateError("cascade grade levels", "grade level", err)
	}
	if err := hr.cascadeSections(tx, sectionIDs); err != nil {
		return err
	}
	if err := tx.Where("grade_level_id IN ?", levelIDs).Delete(&domain.GradeLevel{}).Error; err != nil {
		return translateError("cascade grade levels", "grade level", err)
	}
	return nil
}

func (hr *hierarchyRepository) cascadeSections(tx *gorm.DB, sectionIDs []int) error {
	if len(sectionIDs) == 0 {
		return nil
	}
	var subjectIDs []int
	if err := tx.Model(&domain.Subject{}).Where("section_id IN ?", sectionIDs).
		Pluck("subject_id", &subjectIDs).Error; err != nil {
		return translateError("cascade sections", "section", err)
	}
	if err := hr.cascadeSubjects(tx, subjectIDs); err != nil {
		return err
	}
	if err := tx.Where("section_id IN ?", sectionIDs).Delete(&domain.Section{}).Error; err != nil {
		return translateError("cascade sections", "section", err)
	}
	return nil
}

func (hr *hierarchyRepository) cascadeSubjects(tx *gorm.DB, subjectIDs []int) error {
	if len(subjectIDs) == 0 {
		return nil
	}

	var sessionIDs []int
	if err := tx.Model(&domain.AttendanceSession{}).Where("subject_id IN ?", subjectIDs).
		Pluck("session_id", &sessionIDs).Error; err != nil {
		return translateError("cascade subjects", "subject", err)
	}
	if len(sessionIDs) > 0 {
		if err := tx.Where("session_id IN ?", sessionIDs).Delete(&domain.AttendanceRecord{}).Error; err != nil {
			return translateError("cascade subjects", "subject", err)
		}
	}
	if err := tx.Where("subject_id IN ?", subjectIDs).Delete(&domain.AttendanceSession{}).Error; err != nil {
		return translateError("cascade subjects", "subject", err)
	}

	var submissionIDs []int
	if err := tx.Model(&domain.Submission{}).Where("subject_id IN ?", subjectIDs).
		Pluck("submission_id", &submissionIDs).Error; err != nil {
		return translateError("cascade subjects", "subject", err)
	}
	if len(submissionIDs) > 0 {
		if err := tx.Where("submission_id IN ?", submissionIDs).Delete(&domain.StudentSubmission{}).Error; err != nil {
			return translateError("cascade subjects", "subject", err)
		}
		if err := tx.Where("submission_id IN ?", submissionIDs).Delete(&domain.SubmissionFile{}).Error; err != nil {
			return translateError("cascade subjects", "subject", err)
		}
	}
	if err := tx.Where("subject_id IN ?", subjectIDs).Delete(&domain.Submission{}).Error; err != nil {
		return translateError("cascade subjects", "subject", err)
	}
	if err := tx.Where("subject_id IN ?", subjectIDs).Delete(&domain.SubmissionFolder{}).Error; err != nil {
		return translateError("cascade subjects", "subject", err)
	}

	if err := tx.Where("subject_id IN ?", subjectIDs).Delete(&domain.SubjectStudent{}).Error; err != nil {
		return translateError("cascade subjects", "subject", err)
	}
	if err := tx.Where("subject_id IN ?", subjectIDs).Delete(&domain.SubjectInstructor{}).Error; err != nil {
		return translateError("cascade subjects", "subject", err)
	}

	if err := tx.Where("subject_id IN ?", subjectIDs).Delete(&domain.Subject{}).Error; err != nil {
		return translateError("cascade subjects", "subject", err)
	}
	return nil
}
