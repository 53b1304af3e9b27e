package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"schoolhub/domain"
)

type personRepository struct {
	db *gorm.DB
}

func NewPersonRepository(database *gorm.DB) domain.PersonRepo {
	return &personRepository{
		db: database,
	}
}

func (pr *personRepository) GetPersonByID(ctx context.Context, id int) (*domain.Person, error) {
	var person domain.Person
	err := pr.db.WithContext(ctx).First(&person, "person_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "person", ID: id}
		}
		return nil, translateError("get person", "person", err)
	}
	return &person, nil
}

func (pr *personRepository) GetAllByRole(ctx context.Context, role domain.Role) (*[]domain.Person, error) {
	var people []domain.Person
	err := pr.db.WithContext(ctx).
		Where("role = ?", role).
		Order("last_name ASC, first_name ASC, username ASC").
		Find(&people).Error
	if err != nil {
		return nil, translateError("list people", "person", err)
	}
	return &people, nil
}

func (pr *personRepository) FindByUsername(ctx context.Context, username string) (*domain.Person, error) {
	var person domain.Person
	err := pr.db.WithContext(ctx).First(&person, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Entity: "person", ID: 0}
		}
		return nil, translateError("find person", "person", err)
	}
	return &person, nil
}

func (pr *personRepository) RoleOf(ctx context.Context, personID int) (domain.Role, error) {
	var person domain.Person
	err := pr.db.WithContext(ctx).Select("role").First(&person, "person_id = ?", personID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &domain.NotFoundError{Entity: "person", ID: personID}
		}
		return "", translateError("get role", "person", err)
	}
	return person.Role, nil
}
