package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolhub/domain"
)

type submissionUC struct {
	submissionRepo domain.SubmissionRepo
	hierarchyRepo  domain.HierarchyRepo
	activityLog    domain.ActivityLog
	TimeOut        time.Duration
}

func NewSubmissionUseCase(repo domain.SubmissionRepo, hierarchy domain.HierarchyRepo, activity domain.ActivityLog, timeOut time.Duration) domain.SubmissionUseCase {
	return &submissionUC{
		submissionRepo: repo,
		hierarchyRepo:  hierarchy,
		activityLog:    activity,
		TimeOut:        timeOut,
	}
}

func (sUC *submissionUC) CreateFolder(ctx context.Context, actorID int, folder *domain.SubmissionFolder) error {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	folder.Name = strings.TrimSpace(folder.Name)
	if folder.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "is required"}
	}
	if _, err := sUC.hierarchyRepo.GetSubjectByID(ctx, folder.SubjectID); err != nil {
		if domain.IsNotFound(err) {
			return &domain.ValidationError{Field: "subject_id", Reason: "referenced subject does not exist"}
		}
		return err
	}

	if err := sUC.submissionRepo.CreateFolder(ctx, folder); err != nil {
		return err
	}
	recordActivity(sUC.activityLog, sUC.TimeOut, actorID, "create_folder", fmt.Sprintf("created folder %q in subject %d", folder.Name, folder.SubjectID))
	return nil
}

func (sUC *submissionUC) GetFoldersBySubject(ctx context.Context, subjectID int) (*[]domain.SubmissionFolder, error) {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	return sUC.submissionRepo.GetFoldersBySubject(ctx, subjectID)
}

func (sUC *submissionUC) DeleteFolder(ctx context.Context, actorID int, id int) error {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	if err := sUC.submissionRepo.DeleteFolder(ctx, id); err != nil {
		return err
	}
	recordActivity(sUC.activityLog, sUC.TimeOut, actorID, "delete_folder", fmt.Sprintf("deleted folder %d with its submissions", id))
	return nil
}

func (sUC *submissionUC) CreateSubmission(ctx context.Context, actorID int, submission *domain.Submission, files []domain.SubmissionFile) error {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	submission.Name = strings.TrimSpace(submission.Name)
	if submission.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "is required"}
	}
	folder, err := sUC.submissionRepo.GetFolderByID(ctx, submission.FolderID)
	if err != nil {
		if domain.IsNotFound(err) {
			return &domain.ValidationError{Field: "folder_id", Reason: "referenced folder does not exist"}
		}
		return err
	}
	// the folder's subject is authoritative
	submission.SubjectID = folder.SubjectID

	fillFileURLs(files)
	if err := sUC.submissionRepo.CreateSubmission(ctx, submission, files); err != nil {
		return err
	}
	recordActivity(sUC.activityLog, sUC.TimeOut, actorID, "create_submission", fmt.Sprintf("created submission %q with %d file(s)", submission.Name, len(files)))
	return nil
}

func (sUC *submissionUC) UpdateSubmission(ctx context.Context, actorID int, submission *domain.Submission, files *[]domain.SubmissionFile) error {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	submission.Name = strings.TrimSpace(submission.Name)
	if submission.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "is required"}
	}
	folder, err := sUC.submissionRepo.GetFolderByID(ctx, submission.FolderID)
	if err != nil {
		if domain.IsNotFound(err) {
			return &domain.ValidationError{Field: "folder_id", Reason: "referenced folder does not exist"}
		}
		return err
	}
	submission.SubjectID = folder.SubjectID
	if files != nil {
		fillFileURLs(*files)
	}

	if err := sUC.submissionRepo.UpdateSubmission(ctx, submission, files); err != nil {
		return err
	}
	recordActivity(sUC.activityLog, sUC.TimeOut, actorID, "update_submission", fmt.Sprintf("updated submission %d", submission.SubmissionID))
	return nil
}

func (sUC *submissionUC) DeleteSubmission(ctx context.Context, actorID int, id int) error {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	if err := sUC.submissionRepo.DeleteSubmission(ctx, id); err != nil {
		return err
	}
	recordActivity(sUC.activityLog, sUC.TimeOut, actorID, "delete_submission", fmt.Sprintf("deleted submission %d with files and grades", id))
	return nil
}

func (sUC *submissionUC) GetSubmissionByID(ctx context.Context, id int) (*domain.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	return sUC.submissionRepo.GetSubmissionByID(ctx, id)
}

func (sUC *submissionUC) GetSubmissionsBySubject(ctx context.Context, subjectID int, includeHidden bool) (*[]domain.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	return sUC.submissionRepo.GetSubmissionsBySubject(ctx, subjectID, includeHidden)
}

func (sUC *submissionUC) RecordGrade(ctx context.Context, actorID, submissionID, studentID int, grade *float64) error {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	if grade != nil && (*grade < 0 || *grade > 100) {
		return &domain.ValidationError{Field: "grade", Reason: "must be between 0 and 100"}
	}
	if _, err := sUC.submissionRepo.GetSubmissionByID(ctx, submissionID); err != nil {
		return err
	}

	if err := sUC.submissionRepo.UpsertGrade(ctx, submissionID, studentID, grade); err != nil {
		return err
	}
	recordActivity(sUC.activityLog, sUC.TimeOut, actorID, "record_grade", fmt.Sprintf("recorded grade for student %d on submission %d", studentID, submissionID))
	return nil
}

func (sUC *submissionUC) ListStudentSubmissions(ctx context.Context, submissionID int) (*[]domain.StudentSubmission, error) {
	ctx, cancel := context.WithTimeout(ctx, sUC.TimeOut)
	defer cancel()

	return sUC.submissionRepo.ListStudentSubmissions(ctx, submissionID)
}

// fillFileURLs assigns a storage slug for files uploaded without a URL.
func fillFileURLs(files []domain.SubmissionFile) {
	for i := range files {
		if files[i].FileURL == "" {
			files[i].FileURL = "/uploads/" + uuid.NewString() + strings.ToLower(path.Ext(files[i].FileName))
		}
	}
}
