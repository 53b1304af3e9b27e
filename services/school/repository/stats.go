package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"schoolhub/domain"
)

// statsRepository is the read-only aggregation path. It recomputes from the
// current rows on every call; nothing is cached.
type statsRepository struct {
	db *pgxpool.Pool
}

func NewAttendanceStatsRepository(database *pgxpool.Pool) domain.AttendanceStatsRepo {
	return &statsRepository{
		db: database,
	}
}

func NewGradeStatsRepository(database *pgxpool.Pool) domain.GradeStatsRepo {
	return &statsRepository{
		db: database,
	}
}

func (st *statsRepository) SessionStatusCounts(ctx context.Context, sessionID int) (*domain.StatusCounts, error) {
	query := `
		SELECT status, COUNT(*)
		FROM attendance_records
		WHERE session_id = $1 AND deleted_at IS NULL
		GROUP BY status;
	`

	rows, err := st.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, &domain.StorageError{Op: "session status counts", Err: err}
	}
	defer rows.Close()

	var counts domain.StatusCounts
	for rows.Next() {
		var status domain.AttendanceStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, &domain.StorageError{Op: "session status counts", Err: err}
		}
		counts = applyStatusCount(counts, status, n)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "session status counts", Err: err}
	}

	return &counts, nil
}

func (st *statsRepository) SubjectStatusCounts(ctx context.Context, subjectID int) (int, *domain.StatusCounts, error) {
	sessionQuery := `
		SELECT COUNT(*)
		FROM attendance_sessions
		WHERE subject_id = $1 AND deleted_at IS NULL;
	`

	var sessions int
	if err := st.db.QueryRow(ctx, sessionQuery, subjectID).Scan(&sessions); err != nil {
		return 0, nil, &domain.StorageError{Op: "subject status counts", Err: err}
	}

	recordQuery := `
		SELECT r.status, COUNT(*)
		FROM attendance_records r
		JOIN attendance_sessions s ON s.session_id = r.session_id
		WHERE s.subject_id = $1 AND r.deleted_at IS NULL AND s.deleted_at IS NULL
		GROUP BY r.status;
	`

	rows, err := st.db.Query(ctx, recordQuery, subjectID)
	if err != nil {
		return 0, nil, &domain.StorageError{Op: "subject status counts", Err: err}
	}
	defer rows.Close()

	var counts domain.StatusCounts
	for rows.Next() {
		var status domain.AttendanceStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return 0, nil, &domain.StorageError{Op: "subject status counts", Err: err}
		}
		counts = applyStatusCount(counts, status, n)
	}
	if err := rows.Err(); err != nil {
		return 0, nil, &domain.StorageError{Op: "subject status counts", Err: err}
	}

	return sessions, &counts, nil
}

func applyStatusCount(counts domain.StatusCounts, status domain.AttendanceStatus, n int) domain.StatusCounts {
	switch status {
	case domain.AttendancePresent:
		counts.Present = n
	case domain.AttendanceAbsent:
		counts.Absent = n
	case domain.AttendanceLate:
		counts.Late = n
	case domain.AttendanceExcused:
		counts.Excused = n
	}
	return counts
}

func (st *statsRepository) SubjectGradeRollup(ctx context.Context, subjectID int) (*domain.GradeRollup, error) {
	submissionQuery := `
		SELECT COUNT(*)
		FROM submissions
		WHERE subject_id = $1 AND deleted_at IS NULL;
	`

	var rollup domain.GradeRollup
	if err := st.db.QueryRow(ctx, submissionQuery, subjectID).Scan(&rollup.TotalSubmissions); err != nil {
		return nil, &domain.StorageError{Op: "subject grade rollup", Err: fmt.Errorf("count submissions: %w", err)}
	}

	gradeQuery := `
		SELECT
			COUNT(*) FILTER (WHERE ss.grade IS NOT NULL),
			COUNT(*) FILTER (WHERE ss.grade IS NULL),
			COALESCE(SUM(ss.grade), 0),
			COUNT(*) FILTER (WHERE ss.grade >= $2)
		FROM student_submissions ss
		JOIN submissions s ON s.submission_id = ss.submission_id
		WHERE s.subject_id = $1 AND ss.deleted_at IS NULL AND s.deleted_at IS NULL;
	`

	err := st.db.QueryRow(ctx, gradeQuery, subjectID, domain.PassingGrade).Scan(
		&rollup.GradedCount, &rollup.PendingCount, &rollup.GradeSum, &rollup.PassingCount,
	)
	if err != nil {
		return nil, &domain.StorageError{Op: "subject grade rollup", Err: fmt.Errorf("aggregate grades: %w", err)}
	}

	return &rollup, nil
}
