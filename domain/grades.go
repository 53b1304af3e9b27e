package domain

import "context"

// PassingGrade is the fixed threshold separating passing from failing.
const PassingGrade = 75.0

type SubjectGradeStats struct {
	SubjectID        int      `json:"subject_id"`
	TotalSubmissions int      `json:"total_submissions"`
	GradedCount      int      `json:"graded_count"`
	PendingCount     int      `json:"pending_count"`
	AverageGrade     *float64 `json:"average_grade"` // one decimal; nil when nothing is graded
	PassingCount     int      `json:"passing_count"`
	FailingCount     int      `json:"failing_count"`
	PassingRate      int      `json:"passing_rate"` // integer percentage in [0,100]
}

// GradeRollup is the raw aggregate a stats repository returns; the rates are
// derived from it in the usecase.
type GradeRollup struct {
	TotalSubmissions int
	GradedCount      int
	PendingCount     int
	GradeSum         float64
	PassingCount     int
}

type GradeStatsRepo interface {
	SubjectGradeRollup(ctx context.Context, subjectID int) (*GradeRollup, error)
}

type GradeStatsUseCase interface {
	GetSubjectGradeStats(ctx context.Context, subjectID int) (*SubjectGradeStats, error)
}
