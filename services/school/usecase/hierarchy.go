package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"schoolhub/domain"
)

type hierarchyUC struct {
	hierarchyRepo domain.HierarchyRepo
	activityLog   domain.ActivityLog
	TimeOut       time.Duration
}

func NewHierarchyUseCase(repo domain.HierarchyRepo, activity domain.ActivityLog, timeOut time.Duration) domain.HierarchyUseCase {
	return &hierarchyUC{
		hierarchyRepo: repo,
		activityLog:   activity,
		TimeOut:       timeOut,
	}
}

// requireParent converts a missing parent into a ValidationError: creating a
// child under an unknown parent is a bad request, not a lookup miss.
func requireParent(field string, id int, lookup func() error) error {
	if id == 0 {
		return &domain.ValidationError{Field: field, Reason: "is required"}
	}
	if err := lookup(); err != nil {
		if domain.IsNotFound(err) {
			return &domain.ValidationError{Field: field, Reason: "referenced parent does not exist"}
		}
		return err
	}
	return nil
}

// ---- school years ----

func (hUC *hierarchyUC) CreateSchoolYear(ctx context.Context, actorID int, year *domain.SchoolYear) error {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	year.YearLabel = strings.TrimSpace(year.YearLabel)
	if year.YearLabel == "" {
		return &domain.ValidationError{Field: "year_label", Reason: "is required"}
	}

	if err := hUC.hierarchyRepo.CreateSchoolYear(ctx, year); err != nil {
		return err
	}
	recordActivity(hUC.activityLog, hUC.TimeOut, actorID, "create_school_year", fmt.Sprintf("created school year %q", year.YearLabel))
	return nil
}

func (hUC *hierarchyUC) UpdateSchoolYear(ctx context.Context, actorID int, year *domain.SchoolYear) error {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	year.YearLabel = strings.TrimSpace(year.YearLabel)
	if year.YearLabel == "" {
		return &domain.ValidationError{Field: "year_label", Reason: "is required"}
	}

	if err := hUC.hierarchyRepo.UpdateSchoolYear(ctx, year); err != nil {
		return err
	}
	recordActivity(hUC.activityLog, hUC.TimeOut, actorID, "update_school_year", fmt.Sprintf("updated school year %d", year.SchoolYearID))
	return nil
}

func (hUC *hierarchyUC) DeleteSchoolYear(ctx context.Context, actorID int, id int) error {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	if err := hUC.hierarchyRepo.DeleteSchoolYear(ctx, id); err != nil {
		return err
	}
	recordActivity(hUC.activityLog, hUC.TimeOut, actorID, "delete_school_year", fmt.Sprintf("deleted school year %d with all descendants", id))
	return nil
}

func (hUC *hierarchyUC) GetAllSchoolYears(ctx context.Context) (*[]domain.SchoolYearWithCount, error) {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	return hUC.hierarchyRepo.GetAllSchoolYears(ctx)
}

// ---- semesters ----

func (hUC *hierarchyUC) CreateSemester(ctx context.Context, actorID int, semester *domain.Semester) error {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	semester.Name = strings.TrimSpace(semester.Name)
	if semester.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "is required"}
	}
	err := requireParent("school_year_id", semester.SchoolYearID, func() error {
		_, err := hUC.hierarchyRepo.GetSchoolYearByID(ctx, semester.SchoolYearID)
		return err
	})
	if err != nil {
		return err
	}

	if err := hUC.hierarchyRepo.CreateSemester(ctx, semester); err != nil {
		return err
	}
	recordActivity(hUC.activityLog, hUC.TimeOut, actorID, "create_semester", fmt.Sprintf("created semester %q", semester.Name))
	return nil
}

func (hUC *hierarchyUC) UpdateSemester(ctx context.Context, actorID int, semester *domain.Semester) error {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	semester.Name = strings.TrimSpace(semester.Name)
	if semester.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "is required"}
	}

	if err := hUC.hierarchyRepo.UpdateSemester(ctx, semester); err != nil {
		return err
	}
	recordActivity(hUC.activityLog, hUC.TimeOut, actorID, "update_semester", fmt.Sprintf("updated semester %d", semester.SemesterID))
	return nil
}

func (hUC *hierarchyUC) DeleteSemester(ctx context.Context, actorID int, id int) error {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	if err := hUC.hierarchyRepo.DeleteSemester(ctx, id); err != nil {
		return err
	}
	recordActivity(hUC.activityLog, hUC.TimeOut, actorID, "delete_semester", fmt.Sprintf("deleted semester %d with all descendants", id))
	return nil
}

func (hUC *hierarchyUC) GetSemestersByYear(ctx context.Context, yearID int) (*[]domain.SemesterWithCount, error) {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	return hUC.hierarchyRepo.GetSemestersByYear(ctx, yearID)
}

// ---- grade levels ----

func (hUC *hierarchyUC) CreateGradeLevel(ctx context.Context, actorID int, level *domain.GradeLevel) error {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	level.Name = strings.TrimSpace(level.Name)
	if level.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "is required"}
	}
	err := requireParent("semester_id", level.SemesterID, func() error {
		_, err := hUC.hierarchyRepo.GetSemesterByID(ctx, level.SemesterID)
		return err
	})
	if err != nil {
		return err
	}

	if err := hUC.hierarchyRepo.CreateGradeLevel(ctx, level); err != nil {
		return err
	}
	recordActivity(hUC.activityLog, hUC.TimeOut, actorID, "create_grade_level", fmt.Sprintf("created grade level %q", level.Name))
	return nil
}

func (hUC *hierarchyUC) UpdateGradeLevel(ctx context.Context, actorID int, level *domain.GradeLevel) error {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	level.Name = strings.TrimSpace(level.Name)
	if level.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "is required"}
	}

	if err := hUC.hierarchyRepo.UpdateGradeLevel(ctx, level); err != nil {
		return err
	}
	recordActivity(hUC.activityLog, hUC.TimeOut, actorID, "update_grade_level", fmt.Sprintf("updated grade level %d", level.GradeLevelID))
	return nil
}

func (hUC *hierarchyUC) DeleteGradeLevel(ctx context.Context, actorID int, id int) error {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	if err := hUC.hierarchyRepo.DeleteGradeLevel(ctx, id); err != nil {
		return err
	}
	recordActivity(hUC.activityLog, hUC.TimeOut, actorID, "delete_grade_level", fmt.Sprintf("deleted grade level %d with all descendants", id))
	return nil
}

func (hUC *hierarchyUC) GetGradeLevelsBySemester(ctx context.Context, semesterID int) (*[]domain.GradeLevelWithCount, error) {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	return hUC.hierarchyRepo.GetGradeLevelsBySemester(ctx, semesterID)
}

// ---- sections ----

func (hUC *hierarchyUC) CreateSection(ctx context.Context, actorID int, section *domain.Section) error {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	section.Name = strings.TrimSpace(section.Name)
	if section.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "is required"}
	}
	err := requireParent("grade_level_id", section.GradeLevelID, func() error {
		_, err := hUC.hierarchyRepo.GetGradeLevelByID(ctx, section.GradeLevelID)
		return err
	})
	if err != nil {
		return err
	}

	if err := hUC.hierarchyRepo.CreateSection(ctx, section); err != nil {
		return err
	}
	recordActivity(hUC.activityLog, hUC.TimeOut, actorID, "create_section", fmt.Sprintf("created section %q", section.Name))
	return nil
}

func (hUC *hierarchyUC) UpdateSection(ctx context.Context, actorID int, section *domain.Section) error {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	section.Name = strings.TrimSpace(section.Name)
	if section.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "is required"}
	}

	if err := hUC.hierarchyRepo.UpdateSection(ctx, section); err != nil {
		return err
	}
	recordActivity(hUC.activityLog, hUC.TimeOut, actorID, "update_section", fmt.Sprintf("updated section %d", section.SectionID))
	return nil
}

func (hUC *hierarchyUC) DeleteSection(ctx context.Context, actorID int, id int) error {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	if err := hUC.hierarchyRepo.DeleteSection(ctx, id); err != nil {
		return err
	}
	recordActivity(hUC.activityLog, hUC.TimeOut, actorID, "delete_section", fmt.Sprintf("deleted section %d with all descendants", id))
	return nil
}

func (hUC *hierarchyUC) GetSectionsByGradeLevel(ctx context.Context, gradeLevelID int) (*[]domain.SectionWithCount, error) {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	return hUC.hierarchyRepo.GetSectionsByGradeLevel(ctx, gradeLevelID)
}

// ---- subjects ----

func (hUC *hierarchyUC) CreateSubject(ctx context.Context, actorID int, subject *domain.Subject) error {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	subject.Name = strings.TrimSpace(subject.Name)
	if subject.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "is required"}
	}
	err := requireParent("section_id", subject.SectionID, func() error {
		_, err := hUC.hierarchyRepo.GetSectionByID(ctx, subject.SectionID)
		return err
	})
	if err != nil {
		return err
	}

	if err := hUC.hierarchyRepo.CreateSubject(ctx, subject); err != nil {
		return err
	}
	recordActivity(hUC.activityLog, hUC.TimeOut, actorID, "create_subject", fmt.Sprintf("created subject %q", subject.Name))
	return nil
}

func (hUC *hierarchyUC) UpdateSubject(ctx context.Context, actorID int, subject *domain.Subject) error {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	subject.Name = strings.TrimSpace(subject.Name)
	if subject.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "is required"}
	}

	if err := hUC.hierarchyRepo.UpdateSubject(ctx, subject); err != nil {
		return err
	}
	recordActivity(hUC.activityLog, hUC.TimeOut, actorID, "update_subject", fmt.Sprintf("updated subject %d", subject.SubjectID))
	return nil
}

func (hUC *hierarchyUC) DeleteSubject(ctx context.Context, actorID int, id int) error {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	if err := hUC.hierarchyRepo.DeleteSubject(ctx, id); err != nil {
		return err
	}
	recordActivity(hUC.activityLog, hUC.TimeOut, actorID, "delete_subject", fmt.Sprintf("deleted subject %d with all descendants", id))
	return nil
}

func (hUC *hierarchyUC) GetSubjectsBySection(ctx context.Context, sectionID int) (*[]domain.SubjectWithCount, error) {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	return hUC.hierarchyRepo.GetSubjectsBySection(ctx, sectionID)
}

func (hUC *hierarchyUC) GetSubjectByID(ctx context.Context, id int) (*domain.Subject, error) {
	ctx, cancel := context.WithTimeout(ctx, hUC.TimeOut)
	defer cancel()

	return hUC.hierarchyRepo.GetSubjectByID(ctx, id)
}
