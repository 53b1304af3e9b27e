package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/domain"
)

func newEnrollmentUC(repo *fakeEnrollmentRepo, directory *fakeDirectory, hierarchy *fakeHierarchyRepo) domain.EnrollmentUseCase {
	return NewEnrollmentUseCase(repo, directory, hierarchy, &fakeActivityLog{}, time.Second)
}

func TestAssignStudent(t *testing.T) {
	repo := &fakeEnrollmentRepo{}
	directory := &fakeDirectory{roles: map[int]domain.Role{10: domain.RoleStudent, 20: domain.RoleInstructor}}
	hierarchy := &fakeHierarchyRepo{subjects: map[int]*domain.Subject{1: {SubjectID: 1}}}
	uc := newEnrollmentUC(repo, directory, hierarchy)

	require.NoError(t, uc.AssignStudent(context.Background(), 1, 1, 10))
	assert.Equal(t, [][2]int{{1, 10}}, repo.assigned)
}

func TestAssignStudentRejectsWrongRole(t *testing.T) {
	directory := &fakeDirectory{roles: map[int]domain.Role{20: domain.RoleInstructor}}
	hierarchy := &fakeHierarchyRepo{subjects: map[int]*domain.Subject{1: {SubjectID: 1}}}
	uc := newEnrollmentUC(&fakeEnrollmentRepo{}, directory, hierarchy)

	err := uc.AssignStudent(context.Background(), 1, 1, 20)
	assert.True(t, domain.IsValidation(err))

	err = uc.AssignInstructor(context.Background(), 1, 1, 20)
	assert.NoError(t, err)
}

func TestAssignStudentUnknownSubjectOrPerson(t *testing.T) {
	directory := &fakeDirectory{roles: map[int]domain.Role{10: domain.RoleStudent}}
	hierarchy := &fakeHierarchyRepo{subjects: map[int]*domain.Subject{1: {SubjectID: 1}}}
	uc := newEnrollmentUC(&fakeEnrollmentRepo{}, directory, hierarchy)

	err := uc.AssignStudent(context.Background(), 1, 99, 10)
	assert.True(t, domain.IsNotFound(err))

	err = uc.AssignStudent(context.Background(), 1, 1, 99)
	assert.True(t, domain.IsNotFound(err))
}

func TestAssignStudentDuplicatePassesThrough(t *testing.T) {
	repo := &fakeEnrollmentRepo{assignErr: &domain.DuplicateError{Entity: "enrollment"}}
	directory := &fakeDirectory{roles: map[int]domain.Role{10: domain.RoleStudent}}
	hierarchy := &fakeHierarchyRepo{subjects: map[int]*domain.Subject{1: {SubjectID: 1}}}
	uc := newEnrollmentUC(repo, directory, hierarchy)

	err := uc.AssignStudent(context.Background(), 1, 1, 10)
	assert.True(t, domain.IsDuplicate(err))
}

func TestListStudentsSynthesizesDisplayNames(t *testing.T) {
	repo := &fakeEnrollmentRepo{roster: []domain.RosterEntry{
		{PersonID: 1, Username: "jdoe", FirstName: "Jane", LastName: "Doe"},
		{PersonID: 2, Username: "ghost"},
	}}
	uc := newEnrollmentUC(repo, &fakeDirectory{}, &fakeHierarchyRepo{})

	entries, err := uc.ListStudents(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, *entries, 2)
	assert.Equal(t, "Jane Doe", (*entries)[0].DisplayName)
	assert.Equal(t, "ghost", (*entries)[1].DisplayName)
}

func TestRemoveStudentIsIdempotent(t *testing.T) {
	uc := newEnrollmentUC(&fakeEnrollmentRepo{}, &fakeDirectory{}, &fakeHierarchyRepo{})

	assert.NoError(t, uc.RemoveStudent(context.Background(), 1, 1, 10))
	assert.NoError(t, uc.RemoveStudent(context.Background(), 1, 1, 10))
}
