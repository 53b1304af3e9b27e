package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/domain"
)

func TestCreateSchoolYear(t *testing.T) {
	repo := &fakeHierarchyRepo{}
	uc := NewHierarchyUseCase(repo, &fakeActivityLog{}, time.Second)

	year := &domain.SchoolYear{YearLabel: "  2026-2027  "}
	require.NoError(t, uc.CreateSchoolYear(context.Background(), 1, year))
	assert.Equal(t, "2026-2027", year.YearLabel)
	assert.Equal(t, []string{"2026-2027"}, repo.created)

	err := uc.CreateSchoolYear(context.Background(), 1, &domain.SchoolYear{YearLabel: "   "})
	assert.True(t, domain.IsValidation(err))
}

func TestMutationSucceedsWhenActivityLogFails(t *testing.T) {
	repo := &fakeHierarchyRepo{}
	sink := &fakeActivityLog{err: errors.New("sink unavailable")}
	uc := NewHierarchyUseCase(repo, sink, time.Second)

	require.NoError(t, uc.CreateSchoolYear(context.Background(), 1, &domain.SchoolYear{YearLabel: "2026-2027"}))
	assert.Equal(t, []string{"2026-2027"}, repo.created)
}

func TestCreateSchoolYearDuplicatePassesThrough(t *testing.T) {
	repo := &fakeHierarchyRepo{createErr: &domain.DuplicateError{Entity: "school year"}}
	uc := NewHierarchyUseCase(repo, &fakeActivityLog{}, time.Second)

	err := uc.CreateSchoolYear(context.Background(), 1, &domain.SchoolYear{YearLabel: "2026-2027"})
	assert.True(t, domain.IsDuplicate(err))
}

func TestCreateSemesterRequiresParent(t *testing.T) {
	repo := &fakeHierarchyRepo{years: map[int]*domain.SchoolYear{1: {SchoolYearID: 1}}}
	uc := NewHierarchyUseCase(repo, &fakeActivityLog{}, time.Second)

	err := uc.CreateSemester(context.Background(), 1, &domain.Semester{Name: "First Semester"})
	assert.True(t, domain.IsValidation(err), "missing parent id should be rejected")

	err = uc.CreateSemester(context.Background(), 1, &domain.Semester{SchoolYearID: 99, Name: "First Semester"})
	assert.True(t, domain.IsValidation(err), "unknown parent should be a validation error")

	require.NoError(t, uc.CreateSemester(context.Background(), 1, &domain.Semester{SchoolYearID: 1, Name: "First Semester"}))
	assert.Equal(t, []string{"First Semester"}, repo.created)
}
