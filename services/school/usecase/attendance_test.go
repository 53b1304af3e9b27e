package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/domain"
)

func newAttendanceUC(repo *fakeAttendanceRepo, stats *fakeAttendanceStatsRepo, enrollment *fakeEnrollmentRepo, hierarchy *fakeHierarchyRepo) domain.AttendanceUseCase {
	return NewAttendanceUseCase(repo, stats, enrollment, hierarchy, &fakeActivityLog{}, time.Second)
}

func TestCreateSessionFillsAbsentForUnmarkedStudents(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	enrollment := &fakeEnrollmentRepo{students: []int{5, 3, 9}}
	hierarchy := &fakeHierarchyRepo{subjects: map[int]*domain.Subject{1: {SubjectID: 1}}}
	uc := newAttendanceUC(repo, &fakeAttendanceStatsRepo{}, enrollment, hierarchy)

	session := &domain.AttendanceSession{SubjectID: 1, SessionDate: "2026-02-10"}
	marks := []domain.RosterMark{
		{StudentID: 9, Status: domain.AttendancePresent},
		{StudentID: 3, Status: domain.AttendanceLate},
	}
	require.NoError(t, uc.CreateSession(context.Background(), 1, session, marks))

	// records come back ordered by student id, with 5 defaulted to absent
	require.Len(t, repo.lastRecords, 3)
	assert.Equal(t, 3, repo.lastRecords[0].StudentID)
	assert.Equal(t, domain.AttendanceLate, repo.lastRecords[0].Status)
	assert.Equal(t, 5, repo.lastRecords[1].StudentID)
	assert.Equal(t, domain.AttendanceAbsent, repo.lastRecords[1].Status)
	assert.Equal(t, 9, repo.lastRecords[2].StudentID)
	assert.Equal(t, domain.AttendancePresent, repo.lastRecords[2].Status)
}

func TestCreateSessionWithoutMarksStartsEmpty(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	enrollment := &fakeEnrollmentRepo{students: []int{1, 2}}
	hierarchy := &fakeHierarchyRepo{subjects: map[int]*domain.Subject{1: {SubjectID: 1}}}
	uc := newAttendanceUC(repo, &fakeAttendanceStatsRepo{}, enrollment, hierarchy)

	session := &domain.AttendanceSession{SubjectID: 1, SessionDate: "2026-02-10"}
	require.NoError(t, uc.CreateSession(context.Background(), 1, session, nil))
	assert.Empty(t, repo.lastRecords)
}

func TestCreateSessionValidation(t *testing.T) {
	hierarchy := &fakeHierarchyRepo{subjects: map[int]*domain.Subject{1: {SubjectID: 1}}}
	uc := newAttendanceUC(&fakeAttendanceRepo{}, &fakeAttendanceStatsRepo{}, &fakeEnrollmentRepo{}, hierarchy)

	err := uc.CreateSession(context.Background(), 1, &domain.AttendanceSession{SubjectID: 1}, nil)
	assert.True(t, domain.IsValidation(err), "missing date should be a validation error")

	err = uc.CreateSession(context.Background(), 1, &domain.AttendanceSession{SubjectID: 99, SessionDate: "2026-02-10"}, nil)
	assert.True(t, domain.IsValidation(err), "unknown subject should be a validation error")

	err = uc.CreateSession(context.Background(), 1, &domain.AttendanceSession{SubjectID: 1, SessionDate: "2026-02-10"},
		[]domain.RosterMark{{StudentID: 3, Status: "vanished"}})
	assert.True(t, domain.IsValidation(err), "unknown status should be a validation error")
}

func TestUpdateRecordStatus(t *testing.T) {
	repo := &fakeAttendanceRepo{sessions: map[int]*domain.AttendanceSession{4: {SessionID: 4}}}
	uc := newAttendanceUC(repo, &fakeAttendanceStatsRepo{}, &fakeEnrollmentRepo{}, &fakeHierarchyRepo{})

	err := uc.UpdateRecordStatus(context.Background(), 1, 4, 7, "gone")
	assert.True(t, domain.IsValidation(err))

	err = uc.UpdateRecordStatus(context.Background(), 1, 99, 7, domain.AttendanceLate)
	assert.True(t, domain.IsNotFound(err))

	assert.NoError(t, uc.UpdateRecordStatus(context.Background(), 1, 4, 7, domain.AttendanceExcused))
}

func TestGetSessionStats(t *testing.T) {
	repo := &fakeAttendanceRepo{sessions: map[int]*domain.AttendanceSession{4: {SessionID: 4}}}
	stats := &fakeAttendanceStatsRepo{sessionCounts: domain.StatusCounts{Present: 5, Absent: 2, Late: 1}}
	uc := newAttendanceUC(repo, stats, &fakeEnrollmentRepo{}, &fakeHierarchyRepo{})

	got, err := uc.GetSessionStats(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Present)
	assert.Equal(t, 8, got.Total)

	_, err = uc.GetSessionStats(context.Background(), 99)
	assert.True(t, domain.IsNotFound(err))
}

func TestGetSubjectStats(t *testing.T) {
	// 3 sessions, counts 5 present / 2 absent / 1 late: (5+1)/8 = 75%
	stats := &fakeAttendanceStatsRepo{
		sessions: 3,
		counts:   domain.StatusCounts{Present: 5, Absent: 2, Late: 1},
	}
	enrollment := &fakeEnrollmentRepo{studentCount: 4}
	uc := newAttendanceUC(&fakeAttendanceRepo{}, stats, enrollment, &fakeHierarchyRepo{})

	got, err := uc.GetSubjectStats(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalSessions)
	assert.Equal(t, 8, got.TotalRecords)
	assert.Equal(t, 4, got.TotalStudents)
	assert.Equal(t, 75, got.AverageAttendance)
}

func TestGetSubjectStatsNoSessions(t *testing.T) {
	uc := newAttendanceUC(&fakeAttendanceRepo{}, &fakeAttendanceStatsRepo{}, &fakeEnrollmentRepo{}, &fakeHierarchyRepo{})

	got, err := uc.GetSubjectStats(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 0, got.TotalSessions)
	assert.Equal(t, 0, got.AverageAttendance)
}
