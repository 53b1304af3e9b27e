package usecase

import (
	"context"
	"fmt"
	"time"

	"schoolhub/domain"
)

type enrollmentUC struct {
	enrollmentRepo domain.EnrollmentRepo
	directory      domain.PersonDirectory
	hierarchyRepo  domain.HierarchyRepo
	activityLog    domain.ActivityLog
	TimeOut        time.Duration
}

func NewEnrollmentUseCase(repo domain.EnrollmentRepo, directory domain.PersonDirectory, hierarchy domain.HierarchyRepo, activity domain.ActivityLog, timeOut time.Duration) domain.EnrollmentUseCase {
	return &enrollmentUC{
		enrollmentRepo: repo,
		directory:      directory,
		hierarchyRepo:  hierarchy,
		activityLog:    activity,
		TimeOut:        timeOut,
	}
}

func (eUC *enrollmentUC) checkAssignment(ctx context.Context, subjectID, personID int, want domain.Role) error {
	if _, err := eUC.hierarchyRepo.GetSubjectByID(ctx, subjectID); err != nil {
		return err
	}
	role, err := eUC.directory.RoleOf(ctx, personID)
	if err != nil {
		return err
	}
	if role != want {
		return &domain.ValidationError{
			Field:  "person_id",
			Reason: fmt.Sprintf("person %d has role %q, expected %q", personID, role, want),
		}
	}
	return nil
}

func (eUC *enrollmentUC) AssignInstructor(ctx context.Context, actorID, subjectID, instructorID int) error {
	ctx, cancel := context.WithTimeout(ctx, eUC.TimeOut)
	defer cancel()

	if err := eUC.checkAssignment(ctx, subjectID, instructorID, domain.RoleInstructor); err != nil {
		return err
	}
	if err := eUC.enrollmentRepo.AssignInstructor(ctx, subjectID, instructorID); err != nil {
		return err
	}
	recordActivity(eUC.activityLog, eUC.TimeOut, actorID, "assign_instructor", fmt.Sprintf("assigned instructor %d to subject %d", instructorID, subjectID))
	return nil
}

func (eUC *enrollmentUC) AssignStudent(ctx context.Context, actorID, subjectID, studentID int) error {
	ctx, cancel := context.WithTimeout(ctx, eUC.TimeOut)
	defer cancel()

	if err := eUC.checkAssignment(ctx, subjectID, studentID, domain.RoleStudent); err != nil {
		return err
	}
	if err := eUC.enrollmentRepo.AssignStudent(ctx, subjectID, studentID); err != nil {
		return err
	}
	recordActivity(eUC.activityLog, eUC.TimeOut, actorID, "assign_student", fmt.Sprintf("enrolled student %d in subject %d", studentID, subjectID))
	return nil
}

func (eUC *enrollmentUC) RemoveInstructor(ctx context.Context, actorID, subjectID, instructorID int) error {
	ctx, cancel := context.WithTimeout(ctx, eUC.TimeOut)
	defer cancel()

	if err := eUC.enrollmentRepo.RemoveInstructor(ctx, subjectID, instructorID); err != nil {
		return err
	}
	recordActivity(eUC.activityLog, eUC.TimeOut, actorID, "remove_instructor", fmt.Sprintf("removed instructor %d from subject %d", instructorID, subjectID))
	return nil
}

func (eUC *enrollmentUC) RemoveStudent(ctx context.Context, actorID, subjectID, studentID int) error {
	ctx, cancel := context.WithTimeout(ctx, eUC.TimeOut)
	defer cancel()

	if err := eUC.enrollmentRepo.RemoveStudent(ctx, subjectID, studentID); err != nil {
		return err
	}
	recordActivity(eUC.activityLog, eUC.TimeOut, actorID, "remove_student", fmt.Sprintf("removed student %d from subject %d", studentID, subjectID))
	return nil
}

func (eUC *enrollmentUC) ListInstructors(ctx context.Context, subjectID int) (*[]domain.RosterEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, eUC.TimeOut)
	defer cancel()

	entries, err := eUC.enrollmentRepo.ListInstructors(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	synthesizeDisplayNames(entries)
	return entries, nil
}

func (eUC *enrollmentUC) ListStudents(ctx context.Context, subjectID int) (*[]domain.RosterEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, eUC.TimeOut)
	defer cancel()

	entries, err := eUC.enrollmentRepo.ListStudents(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	synthesizeDisplayNames(entries)
	return entries, nil
}

func synthesizeDisplayNames(entries *[]domain.RosterEntry) {
	if entries == nil {
		return
	}
	for i, e := range *entries {
		p := domain.Person{
			Username:   e.Username,
			FirstName:  e.FirstName,
			MiddleName: e.MiddleName,
			LastName:   e.LastName,
		}
		(*entries)[i].DisplayName = p.DisplayName()
	}
}
