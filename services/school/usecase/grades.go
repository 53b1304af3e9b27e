package usecase

import (
	"context"
	"time"

	"schoolhub/domain"
)

type gradeStatsUC struct {
	statsRepo domain.GradeStatsRepo
	TimeOut   time.Duration
}

func NewGradeStatsUseCase(stats domain.GradeStatsRepo, timeOut time.Duration) domain.GradeStatsUseCase {
	return &gradeStatsUC{
		statsRepo: stats,
		TimeOut:   timeOut,
	}
}

// GetSubjectGradeStats derives the rates from the raw rollup. AverageGrade is
// nil exactly when nothing is graded, so "no grades yet" stays distinguishable
// from "average is zero".
func (gUC *gradeStatsUC) GetSubjectGradeStats(ctx context.Context, subjectID int) (*domain.SubjectGradeStats, error) {
	ctx, cancel := context.WithTimeout(ctx, gUC.TimeOut)
	defer cancel()

	rollup, err := gUC.statsRepo.SubjectGradeRollup(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	stats := &domain.SubjectGradeStats{
		SubjectID:        subjectID,
		TotalSubmissions: rollup.TotalSubmissions,
		GradedCount:      rollup.GradedCount,
		PendingCount:     rollup.PendingCount,
		PassingCount:     rollup.PassingCount,
		FailingCount:     rollup.GradedCount - rollup.PassingCount,
		PassingRate:      percentOf(rollup.PassingCount, rollup.GradedCount),
	}
	if rollup.GradedCount > 0 {
		avg := roundTo1(rollup.GradeSum / float64(rollup.GradedCount))
		stats.AverageGrade = &avg
	}
	return stats, nil
}
