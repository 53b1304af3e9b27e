package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type SubjectInstructor struct {
	SubjectInstructorID int            `gorm:"primaryKey;autoIncrement" json:"subject_instructor_id"`
	SubjectID           int            `gorm:"not null;index" json:"subject_id"`
	InstructorID        int            `gorm:"not null;index" json:"instructor_id"`
	CreatedAt           time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type SubjectStudent struct {
	SubjectStudentID int            `gorm:"primaryKey;autoIncrement" json:"subject_student_id"`
	SubjectID        int            `gorm:"not null;index" json:"subject_id"`
	StudentID        int            `gorm:"not null;index" json:"student_id"`
	EnrolledAt       time.Time      `gorm:"not null" json:"enrolled_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// RosterEntry is a roster row joined with the person's profile fields.
// DisplayName is synthesized in the usecase, not stored.
type RosterEntry struct {
	PersonID    int        `json:"person_id"`
	Username    string     `json:"username"`
	FirstName   string     `json:"first_name"`
	MiddleName  string     `json:"middle_name"`
	LastName    string     `json:"last_name"`
	DisplayName string     `gorm:"-" json:"display_name"`
	EnrolledAt  *time.Time `json:"enrolled_at,omitempty"`
}

type EnrollmentRepo interface {
	AssignInstructor(ctx context.Context, subjectID, instructorID int) error
	AssignStudent(ctx context.Context, subjectID, studentID int) error
	RemoveInstructor(ctx context.Context, subjectID, instructorID int) error
	RemoveStudent(ctx context.Context, subjectID, studentID int) error
	ListInstructors(ctx context.Context, subjectID int) (*[]RosterEntry, error)
	ListStudents(ctx context.Context, subjectID int) (*[]RosterEntry, error)
	StudentIDs(ctx context.Context, subjectID int) ([]int, error)
	CountStudents(ctx context.Context, subjectID int) (int, error)
}

type EnrollmentUseCase interface {
	AssignInstructor(ctx context.Context, actorID, subjectID, instructorID int) error
	AssignStudent(ctx context.Context, actorID, subjectID, studentID int) error
	RemoveInstructor(ctx context.Context, actorID, subjectID, instructorID int) error
	RemoveStudent(ctx context.Context, actorID, subjectID, studentID int) error
	ListInstructors(ctx context.Context, subjectID int) (*[]RosterEntry, error)
	ListStudents(ctx context.Context, subjectID int) (*[]RosterEntry, error)
}
