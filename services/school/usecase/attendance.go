package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"schoolhub/domain"
)

type attendanceUC struct {
	attendanceRepo domain.AttendanceRepo
	statsRepo      domain.AttendanceStatsRepo
	enrollmentRepo domain.EnrollmentRepo
	hierarchyRepo  domain.HierarchyRepo
	activityLog    domain.ActivityLog
	TimeOut        time.Duration
}

func NewAttendanceUseCase(repo domain.AttendanceRepo, stats domain.AttendanceStatsRepo, enrollment domain.EnrollmentRepo, hierarchy domain.HierarchyRepo, activity domain.ActivityLog, timeOut time.Duration) domain.AttendanceUseCase {
	return &attendanceUC{
		attendanceRepo: repo,
		statsRepo:      stats,
		enrollmentRepo: enrollment,
		hierarchyRepo:  hierarchy,
		activityLog:    activity,
		TimeOut:        timeOut,
	}
}

func (aUC *attendanceUC) CreateSession(ctx context.Context, actorID int, session *domain.AttendanceSession, marks []domain.RosterMark) error {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	if session.SessionDate == "" {
		return &domain.ValidationError{Field: "session_date", Reason: "is required"}
	}
	if _, err := aUC.hierarchyRepo.GetSubjectByID(ctx, session.SubjectID); err != nil {
		if domain.IsNotFound(err) {
			return &domain.ValidationError{Field: "subject_id", Reason: "referenced subject does not exist"}
		}
		return err
	}
	for _, m := range marks {
		if !m.Status.Valid() {
			return &domain.ValidationError{
				Field:  "status",
				Reason: fmt.Sprintf("unknown attendance status %q for student %d", m.Status, m.StudentID),
			}
		}
	}

	records, err := aUC.buildInitialRecords(ctx, session.SubjectID, marks)
	if err != nil {
		return err
	}

	if err := aUC.attendanceRepo.CreateSession(ctx, session, records); err != nil {
		return err
	}
	recordActivity(aUC.activityLog, aUC.TimeOut, actorID, "create_session", fmt.Sprintf("created attendance session for subject %d on %s with %d record(s)", session.SubjectID, session.SessionDate, len(records)))
	return nil
}

// buildInitialRecords merges the explicit marks with the enrolled roster:
// every enrolled student missing from the marks defaults to absent. Without
// any marks the session starts empty.
func (aUC *attendanceUC) buildInitialRecords(ctx context.Context, subjectID int, marks []domain.RosterMark) ([]domain.AttendanceRecord, error) {
	if len(marks) == 0 {
		return nil, nil
	}

	byStudent := make(map[int]domain.AttendanceStatus, len(marks))
	for _, m := range marks {
		byStudent[m.StudentID] = m.Status
	}

	enrolled, err := aUC.enrollmentRepo.StudentIDs(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	for _, id := range enrolled {
		if _, ok := byStudent[id]; !ok {
			byStudent[id] = domain.AttendanceAbsent
		}
	}

	ids := make([]int, 0, len(byStudent))
	for id := range byStudent {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	records := make([]domain.AttendanceRecord, 0, len(ids))
	for _, id := range ids {
		records = append(records, domain.AttendanceRecord{StudentID: id, Status: byStudent[id]})
	}
	return records, nil
}

func (aUC *attendanceUC) GetSessionsBySubject(ctx context.Context, subjectID int, includeHidden bool) (*[]domain.AttendanceSession, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.attendanceRepo.GetSessionsBySubject(ctx, subjectID, includeHidden)
}

func (aUC *attendanceUC) DeleteSession(ctx context.Context, actorID int, id int) error {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	if err := aUC.attendanceRepo.DeleteSession(ctx, id); err != nil {
		return err
	}
	recordActivity(aUC.activityLog, aUC.TimeOut, actorID, "delete_session", fmt.Sprintf("deleted attendance session %d with its records", id))
	return nil
}

func (aUC *attendanceUC) UpdateRecordStatus(ctx context.Context, actorID, sessionID, studentID int, status domain.AttendanceStatus) error {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	if !status.Valid() {
		return &domain.ValidationError{Field: "status", Reason: fmt.Sprintf("unknown attendance status %q", status)}
	}
	if _, err := aUC.attendanceRepo.GetSessionByID(ctx, sessionID); err != nil {
		return err
	}

	if err := aUC.attendanceRepo.UpdateRecordStatus(ctx, sessionID, studentID, status); err != nil {
		return err
	}
	recordActivity(aUC.activityLog, aUC.TimeOut, actorID, "update_attendance", fmt.Sprintf("marked student %d as %s in session %d", studentID, status, sessionID))
	return nil
}

func (aUC *attendanceUC) ListRecords(ctx context.Context, sessionID int) (*[]domain.AttendanceRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	return aUC.attendanceRepo.ListRecords(ctx, sessionID)
}

func (aUC *attendanceUC) GetSessionStats(ctx context.Context, sessionID int) (*domain.SessionStats, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	if _, err := aUC.attendanceRepo.GetSessionByID(ctx, sessionID); err != nil {
		return nil, err
	}
	counts, err := aUC.statsRepo.SessionStatusCounts(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &domain.SessionStats{
		SessionID:    sessionID,
		StatusCounts: *counts,
		Total:        counts.Total(),
	}, nil
}

// GetSubjectStats aggregates across all sessions of the subject. A subject
// with no sessions yields all-zero statistics, not an error. Late counts as
// attended because lateness implies presence.
func (aUC *attendanceUC) GetSubjectStats(ctx context.Context, subjectID int) (*domain.SubjectAttendanceStats, error) {
	ctx, cancel := context.WithTimeout(ctx, aUC.TimeOut)
	defer cancel()

	sessions, counts, err := aUC.statsRepo.SubjectStatusCounts(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	students, err := aUC.enrollmentRepo.CountStudents(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	total := counts.Total()
	return &domain.SubjectAttendanceStats{
		SubjectID:         subjectID,
		TotalSessions:     sessions,
		TotalPresent:      counts.Present,
		TotalAbsent:       counts.Absent,
		TotalLate:         counts.Late,
		TotalExcused:      counts.Excused,
		TotalRecords:      total,
		TotalStudents:     students,
		AverageAttendance: percentOf(counts.Present+counts.Late, total),
	}, nil
}
