package delivery

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/domain"
)

type fakeHierarchyUseCase struct {
	domain.HierarchyUseCase
	updatedYear    *domain.SchoolYear
	updatedSubject *domain.Subject
}

func (f *fakeHierarchyUseCase) UpdateSchoolYear(ctx context.Context, actorID int, year *domain.SchoolYear) error {
	f.updatedYear = year
	return nil
}

func (f *fakeHierarchyUseCase) UpdateSubject(ctx context.Context, actorID int, subject *domain.Subject) error {
	f.updatedSubject = subject
	return nil
}

func TestUpdateSchoolYearValidatesPayload(t *testing.T) {
	uc := &fakeHierarchyUseCase{}
	app := fiber.New()
	NewHierarchyDelivery(app, uc)

	status := putJSON(t, app, "/years/7", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Nil(t, uc.updatedYear, "invalid payload must not reach the usecase")

	status = putJSON(t, app, "/years/7", `{"year_label":"2026-2027"}`)
	assert.Equal(t, fiber.StatusOK, status)
	require.NotNil(t, uc.updatedYear)
	assert.Equal(t, 7, uc.updatedYear.SchoolYearID)
}

func TestUpdateSubjectValidatesPayload(t *testing.T) {
	uc := &fakeHierarchyUseCase{}
	app := fiber.New()
	NewHierarchyDelivery(app, uc)

	status := putJSON(t, app, "/subjects/4", `{"section_id":2}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Nil(t, uc.updatedSubject, "missing name must not reach the usecase")

	status = putJSON(t, app, "/subjects/4", `{"name":"Algebra","section_id":2}`)
	assert.Equal(t, fiber.StatusOK, status)
	require.NotNil(t, uc.updatedSubject)
	assert.Equal(t, 4, uc.updatedSubject.SubjectID)
	assert.Equal(t, "Algebra", uc.updatedSubject.Name)
}
