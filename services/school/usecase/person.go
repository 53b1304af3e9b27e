package usecase

import (
	"context"
	"time"

	"schoolhub/domain"
)

type personUC struct {
	personRepo domain.PersonRepo
	TimeOut    time.Duration
}

func NewPersonUseCase(repo domain.PersonRepo, timeOut time.Duration) domain.PersonUseCase {
	return &personUC{
		personRepo: repo,
		TimeOut:    timeOut,
	}
}

func (pu *personUC) GetPerson(ctx context.Context, id int) (*domain.Person, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	return pu.personRepo.GetPersonByID(ctx, id)
}

func (pu *personUC) GetPeopleByRole(ctx context.Context, role domain.Role) (*[]domain.Person, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.TimeOut)
	defer cancel()

	if !role.Valid() {
		return nil, &domain.ValidationError{Field: "role", Reason: "must be admin, instructor or student"}
	}

	return pu.personRepo.GetAllByRole(ctx, role)
}
