package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"schoolhub/domain"
)

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(database *gorm.DB) domain.EnrollmentRepo {
	return &enrollmentRepository{
		db: database,
	}
}

func (er *enrollmentRepository) AssignInstructor(ctx context.Context, subjectID, instructorID int) error {
	var existing domain.SubjectInstructor
	err := er.db.WithContext(ctx).
		Where("subject_id = ? AND instructor_id = ?", subjectID, instructorID).
		First(&existing).Error
	if err == nil {
		return &domain.DuplicateError{Entity: "instructor assignment"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return translateError("assign instructor", "instructor assignment", err)
	}

	row := domain.SubjectInstructor{SubjectID: subjectID, InstructorID: instructorID}
	if err := er.db.WithContext(ctx).Create(&row).Error; err != nil {
		return translateError("assign instructor", "instructor assignment", err)
	}
	return nil
}

func (er *enrollmentRepository) AssignStudent(ctx context.Context, subjectID, studentID int) error {
	var existing domain.SubjectStudent
	err := er.db.WithContext(ctx).
		Where("subject_id = ? AND student_id = ?", subjectID, studentID).
		First(&existing).Error
	if err == nil {
		return &domain.DuplicateError{Entity: "student enrollment"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return translateError("assign student", "student enrollment", err)
	}

	row := domain.SubjectStudent{SubjectID: subjectID, StudentID: studentID, EnrolledAt: time.Now()}
	if err := er.db.WithContext(ctx).Create(&row).Error; err != nil {
		return translateError("assign student", "student enrollment", err)
	}
	return nil
}

// Removal is idempotent: a missing pairing is still success.
func (er *enrollmentRepository) RemoveInstructor(ctx context.Context, subjectID, instructorID int) error {
	res := er.db.WithContext(ctx).
		Where("subject_id = ? AND instructor_id = ?", subjectID, instructorID).
		Delete(&domain.SubjectInstructor{})
	if res.Error != nil {
		return translateError("remove instructor", "instructor assignment", res.Error)
	}
	return nil
}

func (er *enrollmentRepository) RemoveStudent(ctx context.Context, subjectID, studentID int) error {
	res := er.db.WithContext(ctx).
		Where("subject_id = ? AND student_id = ?", subjectID, studentID).
		Delete(&domain.SubjectStudent{})
	if res.Error != nil {
		return translateError("remove student", "student enrollment", res.Error)
	}
	return nil
}

func (er *enrollmentRepository) ListInstructors(ctx context.Context, subjectID int) (*[]domain.RosterEntry, error) {
	var entries []domain.RosterEntry
	err := er.db.WithContext(ctx).
		Table("subject_instructors AS si").
		Select("u.person_id, u.username, u.first_name, u.middle_name, u.last_name").
		Joins("JOIN users u ON u.person_id = si.instructor_id AND u.deleted_at IS NULL").
		Where("si.subject_id = ? AND si.deleted_at IS NULL", subjectID).
		Order("u.last_name ASC, u.first_name ASC, u.username ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, translateError("list instructors", "instructor assignment", err)
	}
	return &entries, nil
}

func (er *enrollmentRepository) ListStudents(ctx context.Context, subjectID int) (*[]domain.RosterEntry, error) {
	var entries []domain.RosterEntry
	err := er.db.WithContext(ctx).
		Table("subject_students AS ss").
		Select("u.person_id, u.username, u.first_name, u.middle_name, u.last_name, ss.enrolled_at").
		Joins("JOIN users u ON u.person_id = ss.student_id AND u.deleted_at IS NULL").
		Where("ss.subject_id = ? AND ss.deleted_at IS NULL", subjectID).
		Order("u.last_name ASC, u.first_name ASC, u.username ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, translateError("list students", "student enrollment", err)
	}
	return &entries, nil
}

func (er *enrollmentRepository) StudentIDs(ctx context.Context, subjectID int) ([]int, error) {
	var ids []int
	err := er.db.WithContext(ctx).Model(&domain.SubjectStudent{}).
		Where("subject_id = ?", subjectID).
		Pluck("student_id", &ids).Error
	if err != nil {
		return nil, translateError("list student ids", "student enrollment", err)
	}
	return ids, nil
}

func (er *enrollmentRepository) CountStudents(ctx context.Context, subjectID int) (int, error) {
	var n int64
	err := er.db.WithContext(ctx).Model(&domain.SubjectStudent{}).
		Where("subject_id = ?", subjectID).
		Count(&n).Error
	if err != nil {
		return 0, translateError("count students", "student enrollment", err)
	}
	return int(n), nil
}
