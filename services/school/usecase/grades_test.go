package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/domain"
)

func TestGetSubjectGradeStats(t *testing.T) {
	// grades 80, 60, 90, 70 against the 75 threshold: two pass, two fail
	uc := NewGradeStatsUseCase(&fakeGradeStatsRepo{rollup: domain.GradeRollup{
		TotalSubmissions: 6,
		GradedCount:      4,
		PendingCount:     2,
		GradeSum:         300,
		PassingCount:     2,
	}}, time.Second)

	stats, err := uc.GetSubjectGradeStats(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 7, stats.SubjectID)
	assert.Equal(t, 6, stats.TotalSubmissions)
	assert.Equal(t, 4, stats.GradedCount)
	assert.Equal(t, 2, stats.PendingCount)
	assert.Equal(t, 2, stats.PassingCount)
	assert.Equal(t, 2, stats.FailingCount)
	assert.Equal(t, 50, stats.PassingRate)
	require.NotNil(t, stats.AverageGrade)
	assert.Equal(t, 75.0, *stats.AverageGrade)
}

func TestGetSubjectGradeStatsNothingGraded(t *testing.T) {
	uc := NewGradeStatsUseCase(&fakeGradeStatsRepo{rollup: domain.GradeRollup{
		TotalSubmissions: 3,
		PendingCount:     3,
	}}, time.Second)

	stats, err := uc.GetSubjectGradeStats(context.Background(), 7)
	require.NoError(t, err)

	assert.Nil(t, stats.AverageGrade)
	assert.Equal(t, 0, stats.PassingRate)
	assert.Equal(t, 0, stats.FailingCount)
}

func TestGetSubjectGradeStatsAverageRounding(t *testing.T) {
	uc := NewGradeStatsUseCase(&fakeGradeStatsRepo{rollup: domain.GradeRollup{
		TotalSubmissions: 3,
		GradedCount:      3,
		GradeSum:         200,
		PassingCount:     1,
	}}, time.Second)

	stats, err := uc.GetSubjectGradeStats(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, stats.AverageGrade)
	assert.Equal(t, 66.7, *stats.AverageGrade)
	assert.Equal(t, 33, stats.PassingRate)
}
