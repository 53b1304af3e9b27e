package delivery

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/domain"
	"schoolhub/middleware"
)

type fakeSubmissionUseCase struct {
	domain.SubmissionUseCase
	got      *domain.Submission
	gotFiles *[]domain.SubmissionFile
}

func (f *fakeSubmissionUseCase) UpdateSubmission(ctx context.Context, actorID int, submission *domain.Submission, files *[]domain.SubmissionFile) error {
	f.got = submission
	f.gotFiles = files
	return nil
}

func staffToken(t *testing.T) string {
	t.Helper()
	token, err := middleware.GenerateJWT(1, "admin", "admin")
	require.NoError(t, err)
	return token
}

func putJSON(t *testing.T, app *fiber.App, target, body string) int {
	t.Helper()
	req := httptest.NewRequest("PUT", target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+staffToken(t))
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestUpdateSubmissionCarriesFolderID(t *testing.T) {
	uc := &fakeSubmissionUseCase{}
	app := fiber.New()
	NewSubmissionDelivery(app, uc)

	status := putJSON(t, app, "/submissions/5", `{"folder_id":3,"name":"Essay 1","description":"updated"}`)
	assert.Equal(t, fiber.StatusOK, status)

	require.NotNil(t, uc.got)
	assert.Equal(t, 5, uc.got.SubmissionID)
	assert.Equal(t, 3, uc.got.FolderID)
	assert.Equal(t, "Essay 1", uc.got.Name)
}

func TestUpdateSubmissionOmittedFilesStaysNil(t *testing.T) {
	uc := &fakeSubmissionUseCase{}
	app := fiber.New()
	NewSubmissionDelivery(app, uc)

	status := putJSON(t, app, "/submissions/5", `{"folder_id":3,"name":"Essay 1"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Nil(t, uc.gotFiles)
}

func TestUpdateSubmissionEmptyFilesListSurvivesParsing(t *testing.T) {
	uc := &fakeSubmissionUseCase{}
	app := fiber.New()
	NewSubmissionDelivery(app, uc)

	status := putJSON(t, app, "/submissions/5", `{"folder_id":3,"name":"Essay 1","files":[]}`)
	assert.Equal(t, fiber.StatusOK, status)
	require.NotNil(t, uc.gotFiles)
	assert.Empty(t, *uc.gotFiles)
}
