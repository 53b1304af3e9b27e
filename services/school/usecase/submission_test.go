package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/domain"
)

func newSubmissionUC(repo *fakeSubmissionRepo, hierarchy *fakeHierarchyRepo) domain.SubmissionUseCase {
	return NewSubmissionUseCase(repo, hierarchy, &fakeActivityLog{}, time.Second)
}

func TestCreateSubmissionTakesSubjectFromFolder(t *testing.T) {
	repo := &fakeSubmissionRepo{folders: map[int]*domain.SubmissionFolder{3: {FolderID: 3, SubjectID: 8}}}
	uc := newSubmissionUC(repo, &fakeHierarchyRepo{})

	sub := &domain.Submission{FolderID: 3, SubjectID: 999, Name: "Essay 1"}
	require.NoError(t, uc.CreateSubmission(context.Background(), 1, sub, nil))
	assert.Equal(t, 8, sub.SubjectID)
}

func TestCreateSubmissionValidation(t *testing.T) {
	repo := &fakeSubmissionRepo{folders: map[int]*domain.SubmissionFolder{3: {FolderID: 3, SubjectID: 8}}}
	uc := newSubmissionUC(repo, &fakeHierarchyRepo{})

	err := uc.CreateSubmission(context.Background(), 1, &domain.Submission{FolderID: 3, Name: "   "}, nil)
	assert.True(t, domain.IsValidation(err), "blank name should be rejected")

	err = uc.CreateSubmission(context.Background(), 1, &domain.Submission{FolderID: 99, Name: "Essay"}, nil)
	assert.True(t, domain.IsValidation(err), "unknown folder should be a validation error")
}

func TestCreateSubmissionAssignsFileURLs(t *testing.T) {
	repo := &fakeSubmissionRepo{folders: map[int]*domain.SubmissionFolder{3: {FolderID: 3, SubjectID: 8}}}
	uc := newSubmissionUC(repo, &fakeHierarchyRepo{})

	files := []domain.SubmissionFile{
		{FileName: "Prompt.PDF"},
		{FileName: "rubric.xlsx", FileURL: "/uploads/existing.xlsx"},
	}
	require.NoError(t, uc.CreateSubmission(context.Background(), 1, &domain.Submission{FolderID: 3, Name: "Essay"}, files))

	require.Len(t, repo.lastFiles, 2)
	assert.True(t, strings.HasPrefix(repo.lastFiles[0].FileURL, "/uploads/"))
	assert.True(t, strings.HasSuffix(repo.lastFiles[0].FileURL, ".pdf"))
	assert.Equal(t, "/uploads/existing.xlsx", repo.lastFiles[1].FileURL)
}

func TestUpdateSubmissionKeepsFolderAssociation(t *testing.T) {
	repo := &fakeSubmissionRepo{folders: map[int]*domain.SubmissionFolder{3: {FolderID: 3, SubjectID: 8}}}
	uc := newSubmissionUC(repo, &fakeHierarchyRepo{})

	sub := &domain.Submission{SubmissionID: 5, FolderID: 3, Name: "Essay 1"}
	require.NoError(t, uc.UpdateSubmission(context.Background(), 1, sub, nil))

	require.NotNil(t, repo.lastUpdate)
	assert.Equal(t, 3, repo.lastUpdate.FolderID)
	assert.Equal(t, 8, repo.lastUpdate.SubjectID)
}

func TestUpdateSubmissionRequiresExistingFolder(t *testing.T) {
	repo := &fakeSubmissionRepo{folders: map[int]*domain.SubmissionFolder{3: {FolderID: 3, SubjectID: 8}}}
	uc := newSubmissionUC(repo, &fakeHierarchyRepo{})

	err := uc.UpdateSubmission(context.Background(), 1, &domain.Submission{SubmissionID: 5, Name: "Essay"}, nil)
	assert.True(t, domain.IsValidation(err), "zero folder id should be rejected")
	assert.False(t, repo.updateCalled)

	err = uc.UpdateSubmission(context.Background(), 1, &domain.Submission{SubmissionID: 5, FolderID: 99, Name: "Essay"}, nil)
	assert.True(t, domain.IsValidation(err), "unknown folder should be a validation error")
	assert.False(t, repo.updateCalled)
}

func TestUpdateSubmissionFileSemantics(t *testing.T) {
	repo := &fakeSubmissionRepo{folders: map[int]*domain.SubmissionFolder{3: {FolderID: 3, SubjectID: 8}}}
	uc := newSubmissionUC(repo, &fakeHierarchyRepo{})
	sub := domain.Submission{SubmissionID: 5, FolderID: 3, Name: "Essay"}

	// nil leaves the file set untouched
	require.NoError(t, uc.UpdateSubmission(context.Background(), 1, &sub, nil))
	assert.Nil(t, repo.lastUpdateFiles)

	// an empty slice is a full replace that clears every file
	empty := []domain.SubmissionFile{}
	require.NoError(t, uc.UpdateSubmission(context.Background(), 1, &sub, &empty))
	require.NotNil(t, repo.lastUpdateFiles)
	assert.Empty(t, *repo.lastUpdateFiles)

	// a populated slice replaces with exactly those files
	next := []domain.SubmissionFile{{FileName: "prompt.pdf"}}
	require.NoError(t, uc.UpdateSubmission(context.Background(), 1, &sub, &next))
	require.NotNil(t, repo.lastUpdateFiles)
	require.Len(t, *repo.lastUpdateFiles, 1)
	assert.Equal(t, "prompt.pdf", (*repo.lastUpdateFiles)[0].FileName)
}

func TestRecordGrade(t *testing.T) {
	repo := &fakeSubmissionRepo{submissions: map[int]*domain.Submission{5: {SubmissionID: 5}}}
	uc := newSubmissionUC(repo, &fakeHierarchyRepo{})

	grade := 87.5
	require.NoError(t, uc.RecordGrade(context.Background(), 1, 5, 10, &grade))
	assert.Equal(t, &grade, repo.grades[[2]int{5, 10}])

	// nil grade clears an existing one
	require.NoError(t, uc.RecordGrade(context.Background(), 1, 5, 10, nil))
	assert.Nil(t, repo.grades[[2]int{5, 10}])
}

func TestRecordGradeValidation(t *testing.T) {
	repo := &fakeSubmissionRepo{submissions: map[int]*domain.Submission{5: {SubmissionID: 5}}}
	uc := newSubmissionUC(repo, &fakeHierarchyRepo{})

	low, high := -0.5, 100.5
	assert.True(t, domain.IsValidation(uc.RecordGrade(context.Background(), 1, 5, 10, &low)))
	assert.True(t, domain.IsValidation(uc.RecordGrade(context.Background(), 1, 5, 10, &high)))

	ok := 100.0
	assert.NoError(t, uc.RecordGrade(context.Background(), 1, 5, 10, &ok))

	assert.True(t, domain.IsNotFound(uc.RecordGrade(context.Background(), 1, 99, 10, &ok)))
}

func TestCreateFolderValidation(t *testing.T) {
	hierarchy := &fakeHierarchyRepo{subjects: map[int]*domain.Subject{8: {SubjectID: 8}}}
	uc := newSubmissionUC(&fakeSubmissionRepo{}, hierarchy)

	err := uc.CreateFolder(context.Background(), 1, &domain.SubmissionFolder{SubjectID: 8, Name: ""})
	assert.True(t, domain.IsValidation(err))

	err = uc.CreateFolder(context.Background(), 1, &domain.SubmissionFolder{SubjectID: 99, Name: "Homework"})
	assert.True(t, domain.IsValidation(err))

	assert.NoError(t, uc.CreateFolder(context.Background(), 1, &domain.SubmissionFolder{SubjectID: 8, Name: "Homework"}))
}
