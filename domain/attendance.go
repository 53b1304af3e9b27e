package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// AttendanceStatus represents the status for attendance records.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	default:
		return false
	}
}

type AttendanceSession struct {
	SessionID   int            `gorm:"primaryKey;autoIncrement" json:"session_id"`
	SubjectID   int            `gorm:"not null;index" json:"subject_id" valid:"required~Subject ID is required"`
	SessionDate string         `gorm:"type:varchar(10);not null" json:"session_date" valid:"required~Session date is required"` // YYYY-MM-DD
	SessionTime string         `gorm:"type:varchar(5)" json:"session_time"`                                                     // HH:MM
	IsVisible   bool           `gorm:"not null;default:true" json:"is_visible"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (AttendanceSession) TableName() string { return "attendance_sessions" }

type AttendanceRecord struct {
	RecordID  int              `gorm:"primaryKey;autoIncrement" json:"record_id"`
	SessionID int              `gorm:"not null;index" json:"session_id"`
	StudentID int              `gorm:"not null;index" json:"student_id"`
	Status    AttendanceStatus `gorm:"type:attendance_status;not null" json:"status"`
	CreatedAt time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt   `gorm:"index" json:"deleted_at,omitempty"`
}

// RosterMark is one explicit per-student status supplied at session creation.
type RosterMark struct {
	StudentID int              `json:"student_id" valid:"required~Student ID is required"`
	Status    AttendanceStatus `json:"status"`
}

// StatusCounts holds per-status record counts. A missing status is 0, never null.
type StatusCounts struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Excused int `json:"excused"`
}

func (c StatusCounts) Total() int {
	return c.Present + c.Absent + c.Late + c.Excused
}

type SessionStats struct {
	SessionID int `json:"session_id"`
	StatusCounts
	Total int `json:"total"`
}

type SubjectAttendanceStats struct {
	SubjectID         int `json:"subject_id"`
	TotalSessions     int `json:"total_sessions"`
	TotalPresent      int `json:"total_present"`
	TotalAbsent       int `json:"total_absent"`
	TotalLate         int `json:"total_late"`
	TotalExcused      int `json:"total_excused"`
	TotalRecords      int `json:"total_records"`
	TotalStudents     int `json:"total_students"`
	AverageAttendance int `json:"average_attendance"` // integer percentage in [0,100]
}

type AttendanceRepo interface {
	// CreateSession inserts the session and its initial records in one
	// transaction; records are batch-inserted.
	CreateSession(ctx context.Context, session *AttendanceSession, records []AttendanceRecord) error
	GetSessionByID(ctx context.Context, id int) (*AttendanceSession, error)
	GetSessionsBySubject(ctx context.Context, subjectID int, includeHidden bool) (*[]AttendanceSession, error)
	DeleteSession(ctx context.Context, id int) error
	// UpdateRecordStatus upserts the (session, student) record.
	UpdateRecordStatus(ctx context.Context, sessionID, studentID int, status AttendanceStatus) error
	ListRecords(ctx context.Context, sessionID int) (*[]AttendanceRecord, error)
}

// AttendanceStatsRepo is the read-only aggregation path.
type AttendanceStatsRepo interface {
	SessionStatusCounts(ctx context.Context, sessionID int) (*StatusCounts, error)
	SubjectStatusCounts(ctx context.Context, subjectID int) (sessions int, counts *StatusCounts, err error)
}

type AttendanceUseCase interface {
	CreateSession(ctx context.Context, actorID int, session *AttendanceSession, marks []RosterMark) error
	GetSessionsBySubject(ctx context.Context, subjectID int, includeHidden bool) (*[]AttendanceSession, error)
	DeleteSession(ctx context.Context, actorID int, id int) error
	UpdateRecordStatus(ctx context.Context, actorID, sessionID, studentID int, status AttendanceStatus) error
	ListRecords(ctx context.Context, sessionID int) (*[]AttendanceRecord, error)
	GetSessionStats(ctx context.Context, sessionID int) (*SessionStats, error)
	GetSubjectStats(ctx context.Context, subjectID int) (*SubjectAttendanceStats, error)
}
