package repository

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"schoolhub/domain"
	"schoolhub/middleware"
)

type authRepository struct {
	people domain.PersonRepo
}

func NewAuthRepository(people domain.PersonRepo) domain.AuthRepo {
	return &authRepository{
		people: people,
	}
}

func (ar *authRepository) Login(ctx context.Context, data *domain.LoginRequest) (*domain.LoginResponse, error) {
	person, err := ar.people.FindByUsername(ctx, data.Username)
	if err != nil {
		return nil, fmt.Errorf("invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(person.Password), []byte(data.Password)); err != nil {
		return nil, fmt.Errorf("invalid username or password")
	}

	token, err := middleware.GenerateJWT(person.PersonID, person.Username, string(person.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token, err : %v", err)
	}

	return &domain.LoginResponse{
		Token:    token,
		Role:     person.Role,
		Username: person.Username,
	}, nil
}
