package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"schoolhub/domain"
)

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(database *gorm.DB) domain.SubmissionRepo {
	return &submissionRepository{
		db: database,
	}
}

func (sr *submissionRepository) CreateFolder(ctx context.Context, folder *domain.SubmissionFolder) error {
	if err := sr.db.WithContext(ctx).Create(folder).Error; err != nil {
		return translateError("create folder", "submission folder", err)
	}
	return nil
}

func (sr *submissionRepository) GetFolderByID(ctx context.Context, id int) (*domain.SubmissionFolder, error) {
	var folder domain.SubmissionFolder
	err := sr.db.WithContext(ctx).First(&folder, "folder_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "submission folder", ID: id}
		}
		return nil, translateError("get folder", "submission folder", err)
	}
	return &folder, nil
}

func (sr *submissionRepository) GetFoldersBySubject(ctx context.Context, subjectID int) (*[]domain.SubmissionFolder, error) {
	var folders []domain.SubmissionFolder
	err := sr.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("name ASC").
		Find(&folders).Error
	if err != nil {
		return nil, translateError("list folders", "submission folder", err)
	}
	return &folders, nil
}

// DeleteFolder cascades to the folder's submissions, their files and grade rows.
func (sr *submissionRepository) DeleteFolder(ctx context.Context, id int) error {
	return sr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var folder domain.SubmissionFolder
		if err := tx.First(&folder, "folder_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &domain.NotFoundError{Entity: "submission folder", ID: id}
			}
			return translateError("delete folder", "submission folder", err)
		}

		var submissionIDs []int
		if err := tx.Model(&domain.Submission{}).Where("folder_id = ?", id).
			Pluck("submission_id", &submissionIDs).Error; err != nil {
			return translateError("delete folder", "submission folder", err)
		}
		if len(submissionIDs) > 0 {
			if err := tx.Where("submission_id IN ?", submissionIDs).Delete(&domain.StudentSubmission{}).Error; err != nil {
				return translateError("delete folder", "submission folder", err)
			}
			if err := tx.Where("submission_id IN ?", submissionIDs).Delete(&domain.SubmissionFile{}).Error; err != nil {
				return translateError("delete folder", "submission folder", err)
			}
			if err := tx.Where("submission_id IN ?", submissionIDs).Delete(&domain.Submission{}).Error; err != nil {
				return translateError("delete folder", "submission folder", err)
			}
		}

		if err := tx.Delete(&domain.SubmissionFolder{}, "folder_id = ?", id).Error; err != nil {
			return translateError("delete folder", "submission folder", err)
		}
		return nil
	})
}

func (sr *submissionRepository) CreateSubmission(ctx context.Context, submission *domain.Submission, files []domain.SubmissionFile) error {
	err := sr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(submission).Error; err != nil {
			return err
		}
		if len(files) == 0 {
			return nil
		}
		for i := range files {
			files[i].SubmissionID = submission.SubmissionID
		}
		return tx.Create(&files).Error
	})
	if err != nil {
		return translateError("create submission", "submission", err)
	}
	submission.Files = files
	return nil
}

func (sr *submissionRepository) UpdateSubmission(ctx context.Context, submission *domain.Submission, files *[]domain.SubmissionFile) error {
	return sr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Submission{}).
			Where("submission_id = ?", submission.SubmissionID).
			Updates(map[string]interface{}{
				"folder_id":    submission.FolderID,
				"subject_id":   submission.SubjectID,
				"name":         submission.Name,
				"description":  submission.Description,
				"due_date":     submission.DueDate,
				"due_time":     submission.DueTime,
				"max_attempts": submission.MaxAttempts,
				"is_visible":   submission.IsVisible,
			})
		if res.Error != nil {
			return translateError("update submission", "submission", res.Error)
		}
		if res.RowsAffected == 0 {
			return &domain.NotFoundError{Entity: "submission", ID: submission.SubmissionID}
		}

		// nil means leave the file set untouched; a non-nil slice, empty
		// included, is a full replace: delete all, insert all.
		if files == nil {
			return nil
		}
		if err := tx.Where("submission_id = ?", submission.SubmissionID).
			Delete(&domain.SubmissionFile{}).Error; err != nil {
			return translateError("update submission", "submission", err)
		}
		next := *files
		if len(next) == 0 {
			return nil
		}
		for i := range next {
			next[i].SubmissionFileID = 0
			next[i].SubmissionID = submission.SubmissionID
		}
		if err := tx.Create(&next).Error; err != nil {
			return translateError("update submission", "submission", err)
		}
		return nil
	})
}

func (sr *submissionRepository) DeleteSubmission(ctx context.Context, id int) error {
	return sr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var submission domain.Submission
		if err := tx.First(&submission, "submission_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &domain.NotFoundError{Entity: "submission", ID: id}
			}
			return translateError("delete submission", "submission", err)
		}

		if err := tx.Where("submission_id = ?", id).Delete(&domain.StudentSubmission{}).Error; err != nil {
			return translateError("delete submission", "submission", err)
		}
		if err := tx.Where("submission_id = ?", id).Delete(&domain.SubmissionFile{}).Error; err != nil {
			return translateError("delete submission", "submission", err)
		}
		if err := tx.Delete(&domain.Submission{}, "submission_id = ?", id).Error; err != nil {
			return translateError("delete submission", "submission", err)
		}
		return nil
	})
}

func (sr *submissionRepository) GetSubmissionByID(ctx context.Context, id int) (*domain.Submission, error) {
	var submission domain.Submission
	err := sr.db.WithContext(ctx).First(&submission, "submission_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "submission", ID: id}
		}
		return nil, translateError("get submission", "submission", err)
	}

	var files []domain.SubmissionFile
	err = sr.db.WithContext(ctx).
		Where("submission_id = ?", id).
		Order("file_name ASC").
		Find(&files).Error
	if err != nil {
		return nil, translateError("get submission", "submission", err)
	}
	submission.Files = files

	return &submission, nil
}

func (sr *submissionRepository) GetSubmissionsBySubject(ctx context.Context, subjectID int, includeHidden bool) (*[]domain.Submission, error) {
	query := sr.db.WithContext(ctx).Where("subject_id = ?", subjectID)
	if !includeHidden {
		query = query.Where("is_visible = ?", true)
	}

	var submissions []domain.Submission
	err := query.Order("due_date ASC, name ASC").Find(&submissions).Error
	if err != nil {
		return nil, translateError("list submissions", "submission", err)
	}
	return &submissions, nil
}

func (sr *submissionRepository) UpsertGrade(ctx context.Context, submissionID, studentID int, grade *float64) error {
	var existing domain.StudentSubmission
	err := sr.db.WithContext(ctx).
		Where("submission_id = ? AND student_id = ?", submissionID, studentID).
		First(&existing).Error
	if err == nil {
		res := sr.db.WithContext(ctx).Model(&domain.StudentSubmission{}).
			Where("student_submission_id = ?", existing.StudentSubmissionID).
			Updates(map[string]interface{}{"grade": grade, "updated_at": time.Now()})
		if res.Error != nil {
			return translateError("record grade", "student submission", res.Error)
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return translateError("record grade", "student submission", err)
	}

	row := domain.StudentSubmission{SubmissionID: submissionID, StudentID: studentID, Grade: grade}
	if err := sr.db.WithContext(ctx).Create(&row).Error; err != nil {
		return translateError("record grade", "student submission", err)
	}
	return nil
}

func (sr *submissionRepository) ListStudentSubmissions(ctx context.Context, submissionID int) (*[]domain.StudentSubmission, error) {
	var rows []domain.StudentSubmission
	err := sr.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order("student_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translateError("list student submissions", "student submission", err)
	}
	return &rows, nil
}
