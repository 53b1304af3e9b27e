package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type SchoolYear struct {
	SchoolYearID int            `gorm:"primaryKey;autoIncrement" json:"school_year_id"`
	YearLabel    string         `gorm:"type:varchar(20);not null" json:"year_label" valid:"required~Year label is required"`
	IsActive     bool           `gorm:"not null;default:false" json:"is_active"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type Semester struct {
	SemesterID   int            `gorm:"primaryKey;autoIncrement" json:"semester_id"`
	Name         string         `gorm:"type:varchar(100);not null" json:"name" valid:"required~Name is required"`
	SchoolYearID int            `gorm:"not null;index" json:"school_year_id" valid:"required~School year ID is required"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type GradeLevel struct {
	GradeLevelID int            `gorm:"primaryKey;autoIncrement" json:"grade_level_id"`
	Name         string         `gorm:"type:varchar(100);not null" json:"name" valid:"required~Name is required"`
	SemesterID   int            `gorm:"not null;index" json:"semester_id" valid:"required~Semester ID is required"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type Section struct {
	SectionID    int            `gorm:"primaryKey;autoIncrement" json:"section_id"`
	Name         string         `gorm:"type:varchar(100);not null" json:"name" valid:"required~Name is required"`
	GradeLevelID int            `gorm:"not null;index" json:"grade_level_id" valid:"required~Grade level ID is required"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type Subject struct {
	SubjectID int            `gorm:"primaryKey;autoIncrement" json:"subject_id"`
	Name      string         `gorm:"type:varchar(150);not null" json:"name" valid:"required~Name is required"`
	Code      string         `gorm:"type:varchar(30)" json:"code"`
	SectionID int            `gorm:"not null;index" json:"section_id" valid:"required~Section ID is required"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// List results carry child counts computed at read time, never cached.

type SchoolYearWithCount struct {
	SchoolYear
	SemesterCount int `json:"semester_count"`
}

type SemesterWithCount struct {
	Semester
	GradeLevelCount int `json:"grade_level_count"`
}

type GradeLevelWithCount struct {
	GradeLevel
	SectionCount int `json:"section_count"`
}

type SectionWithCount struct {
	Section
	SubjectCount int `json:"subject_count"`
}

type SubjectWithCount struct {
	Subject
	StudentCount    int `json:"student_count"`
	InstructorCount int `json:"instructor_count"`
}

type HierarchyRepo interface {
	CreateSchoolYear(ctx context.Context, year *SchoolYear) error
	UpdateSchoolYear(ctx context.Context, year *SchoolYear) error
	DeleteSchoolYear(ctx context.Context, id int) error
	GetAllSchoolYears(ctx context.Context) (*[]SchoolYearWithCount, error)
	GetSchoolYearByID(ctx context.Context, id int) (*SchoolYear, error)

	CreateSemester(ctx context.Context, semester *Semester) error
	UpdateSemester(ctx context.Context, semester *Semester) error
	DeleteSemester(ctx context.Context, id int) error
	GetSemestersByYear(ctx context.Context, yearID int) (*[]SemesterWithCount, error)
	GetSemesterByID(ctx context.Context, id int) (*Semester, error)

	CreateGradeLevel(ctx context.Context, level *GradeLevel) error
	UpdateGradeLevel(ctx context.Context, level *GradeLevel) error
	DeleteGradeLevel(ctx context.Context, id int) error
	GetGradeLevelsBySemester(ctx context.Context, semesterID int) (*[]GradeLevelWithCount, error)
	GetGradeLevelByID(ctx context.Context, id int) (*GradeLevel, error)

	CreateSection(ctx context.Context, section *Section) error
	UpdateSection(ctx context.Context, section *Section) error
	DeleteSection(ctx context.Context, id int) error
	GetSectionsByGradeLevel(ctx context.Context, gradeLevelID int) (*[]SectionWithCount, error)
	GetSectionByID(ctx context.Context, id int) (*Section, error)

	CreateSubject(ctx context.Context, subject *Subject) error
	UpdateSubject(ctx context.Context, subject *Subject) error
	DeleteSubject(ctx context.Context, id int) error
	GetSubjectsBySection(ctx context.Context, sectionID int) (*[]SubjectWithCount, error)
	GetSubjectByID(ctx context.Context, id int) (*Subject, error)
}

type HierarchyUseCase interface {
	CreateSchoolYear(ctx context.Context, actorID int, year *SchoolYear) error
	UpdateSchoolYear(ctx context.Context, actorID int, year *SchoolYear) error
	DeleteSchoolYear(ctx context.Context, actorID int, id int) error
	GetAllSchoolYears(ctx context.Context) (*[]SchoolYearWithCount, error)

	CreateSemester(ctx context.Context, actorID int, semester *Semester) error
	UpdateSemester(ctx context.Context, actorID int, semester *Semester) error
	DeleteSemester(ctx context.Context, actorID int, id int) error
	GetSemestersByYear(ctx context.Context, yearID int) (*[]SemesterWithCount, error)

	CreateGradeLevel(ctx context.Context, actorID int, level *GradeLevel) error
	UpdateGradeLevel(ctx context.Context, actorID int, level *GradeLevel) error
	DeleteGradeLevel(ctx context.Context, actorID int, id int) error
	GetGradeLevelsBySemester(ctx context.Context, semesterID int) (*[]GradeLevelWithCount, error)

	CreateSection(ctx context.Context, actorID int, section *Section) error
	UpdateSection(ctx context.Context, actorID int, section *Section) error
	DeleteSection(ctx context.Context, actorID int, id int) error
	GetSectionsByGradeLevel(ctx context.Context, gradeLevelID int) (*[]SectionWithCount, error)

	CreateSubject(ctx context.Context, actorID int, subject *Subject) error
	UpdateSubject(ctx context.Context, actorID int, subject *Subject) error
	DeleteSubject(ctx context.Context, actorID int, id int) error
	GetSubjectsBySection(ctx context.Context, sectionID int) (*[]SubjectWithCount, error)
	GetSubjectByID(ctx context.Context, id int) (*Subject, error)
}
