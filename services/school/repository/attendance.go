package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"schoolhub/domain"
)

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(database *gorm.DB) domain.AttendanceRepo {
	return &attendanceRepository{
		db: database,
	}
}

func (ar *attendanceRepository) CreateSession(ctx context.Context, session *domain.AttendanceSession, records []domain.AttendanceRecord) error {
	err := ar.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		for i := range records {
			records[i].SessionID = session.SessionID
		}
		// single batch insert, all-or-nothing with the session row
		return tx.Create(&records).Error
	})
	if err != nil {
		return translateError("create session", "attendance session", err)
	}
	return nil
}

func (ar *attendanceRepository) GetSessionByID(ctx context.Context, id int) (*domain.AttendanceSession, error) {
	var session domain.AttendanceSession
	err := ar.db.WithContext(ctx).First(&session, "session_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "attendance session", ID: id}
		}
		return nil, translateError("get session", "attendance session", err)
	}
	return &session, nil
}

func (ar *attendanceRepository) GetSessionsBySubject(ctx context.Context, subjectID int, includeHidden bool) (*[]domain.AttendanceSession, error) {
	query := ar.db.WithContext(ctx).Where("subject_id = ?", subjectID)
	if !includeHidden {
		query = query.Where("is_visible = ?", true)
	}

	var sessions []domain.AttendanceSession
	err := query.Order("session_date DESC, session_time DESC").Find(&sessions).Error
	if err != nil {
		return nil, translateError("list sessions", "attendance session", err)
	}
	return &sessions, nil
}

// DeleteSession removes the session together with its records.
func (ar *attendanceRepository) DeleteSession(ctx context.Context, id int) error {
	return ar.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var session domain.AttendanceSession
		if err := tx.First(&session, "session_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &domain.NotFoundError{Entity: "attendance session", ID: id}
			}
			return translateError("delete session", "attendance session", err)
		}

		if err := tx.Where("session_id = ?", id).Delete(&domain.AttendanceRecord{}).Error; err != nil {
			return translateError("delete session", "attendance session", err)
		}
		if err := tx.Delete(&domain.AttendanceSession{}, "session_id = ?", id).Error; err != nil {
			return translateError("delete session", "attendance session", err)
		}
		return nil
	})
}

func (ar *attendanceRepository) UpdateRecordStatus(ctx context.Context, sessionID, studentID int, status domain.AttendanceStatus) error {
	var existing domain.AttendanceRecord
	err := ar.db.WithContext(ctx).
		Where("session_id = ? AND student_id = ?", sessionID, studentID).
		First(&existing).Error
	if err == nil {
		res := ar.db.WithContext(ctx).Model(&domain.AttendanceRecord{}).
			Where("record_id = ?", existing.RecordID).
			Updates(map[string]interface{}{"status": status})
		if res.Error != nil {
			return translateError("update record", "attendance record", res.Error)
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return translateError("update record", "attendance record", err)
	}

	row := domain.AttendanceRecord{SessionID: sessionID, StudentID: studentID, Status: status}
	if err := ar.db.WithContext(ctx).Create(&row).Error; err != nil {
		return translateError("update record", "attendance record", err)
	}
	return nil
}

func (ar *attendanceRepository) ListRecords(ctx context.Context, sessionID int) (*[]domain.AttendanceRecord, error) {
	var records []domain.AttendanceRecord
	err := ar.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("student_id ASC").
		Find(&records).Error
	if err != nil {
		return nil, translateError("list records", "attendance record", err)
	}
	return &records, nil
}
