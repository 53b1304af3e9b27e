package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type SubmissionFolder struct {
	FolderID  int            `gorm:"primaryKey;autoIncrement" json:"folder_id"`
	SubjectID int            `gorm:"not null;index" json:"subject_id" valid:"required~Subject ID is required"`
	Name      string         `gorm:"type:varchar(150);not null" json:"name" valid:"required~Name is required"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (SubmissionFolder) TableName() string { return "submission_folders" }

type Submission struct {
	SubmissionID int              `gorm:"primaryKey;autoIncrement" json:"submission_id"`
	FolderID     int              `gorm:"not null;index" json:"folder_id" valid:"required~Folder ID is required"`
	SubjectID    int              `gorm:"not null;index" json:"subject_id" valid:"required~Subject ID is required"`
	Name         string           `gorm:"type:varchar(150);not null" json:"name" valid:"required~Name is required"`
	Description  string           `gorm:"type:text" json:"description"`
	DueDate      string           `gorm:"type:varchar(10)" json:"due_date"` // YYYY-MM-DD
	DueTime      string           `gorm:"type:varchar(5)" json:"due_time"`  // HH:MM
	MaxAttempts  int              `gorm:"not null;default:1" json:"max_attempts"`
	IsVisible    bool             `gorm:"not null;default:true" json:"is_visible"`
	Files        []SubmissionFile `gorm:"-" json:"files"`
	CreatedAt    time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"deleted_at,omitempty"`
}

type SubmissionFile struct {
	SubmissionFileID int            `gorm:"primaryKey;autoIncrement" json:"submission_file_id"`
	SubmissionID     int            `gorm:"not null;index" json:"submission_id"`
	FileName         string         `gorm:"type:varchar(255);not null" json:"file_name" valid:"required~File name is required"`
	FileType         string         `gorm:"type:varchar(100)" json:"file_type"`
	FileURL          string         `gorm:"type:varchar(512)" json:"file_url"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type StudentSubmission struct {
	StudentSubmissionID int            `gorm:"primaryKey;autoIncrement" json:"student_submission_id"`
	SubmissionID        int            `gorm:"not null;index" json:"submission_id"`
	StudentID           int            `gorm:"not null;index" json:"student_id"`
	Grade               *float64       `json:"grade"`
	SubmittedAt         *time.Time     `json:"submitted_at"`
	CreatedAt           time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type SubmissionRepo interface {
	CreateFolder(ctx context.Context, folder *SubmissionFolder) error
	GetFolderByID(ctx context.Context, id int) (*SubmissionFolder, error)
	GetFoldersBySubject(ctx context.Context, subjectID int) (*[]SubmissionFolder, error)
	DeleteFolder(ctx context.Context, id int) error

	// CreateSubmission inserts the submission and its files in one transaction.
	CreateSubmission(ctx context.Context, submission *Submission, files []SubmissionFile) error
	// UpdateSubmission replaces the full file set when files is non-nil,
	// including the empty slice. A nil files leaves existing files untouched.
	UpdateSubmission(ctx context.Context, submission *Submission, files *[]SubmissionFile) error
	DeleteSubmission(ctx context.Context, id int) error
	GetSubmissionByID(ctx context.Context, id int) (*Submission, error)
	GetSubmissionsBySubject(ctx context.Context, subjectID int, includeHidden bool) (*[]Submission, error)

	UpsertGrade(ctx context.Context, submissionID, studentID int, grade *float64) error
	ListStudentSubmissions(ctx context.Context, submissionID int) (*[]StudentSubmission, error)
}

type SubmissionUseCase interface {
	CreateFolder(ctx context.Context, actorID int, folder *SubmissionFolder) error
	GetFoldersBySubject(ctx context.Context, subjectID int) (*[]SubmissionFolder, error)
	DeleteFolder(ctx context.Context, actorID int, id int) error

	CreateSubmission(ctx context.Context, actorID int, submission *Submission, files []SubmissionFile) error
	UpdateSubmission(ctx context.Context, actorID int, submission *Submission, files *[]SubmissionFile) error
	DeleteSubmission(ctx context.Context, actorID int, id int) error
	GetSubmissionByID(ctx context.Context, id int) (*Submission, error)
	GetSubmissionsBySubject(ctx context.Context, subjectID int, includeHidden bool) (*[]Submission, error)

	RecordGrade(ctx context.Context, actorID, submissionID, studentID int, grade *float64) error
	ListStudentSubmissions(ctx context.Context, submissionID int) (*[]StudentSubmission, error)
}
