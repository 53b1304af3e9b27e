package usecase

import (
	"context"
	"time"

	"schoolhub/domain"
)

type authUC struct {
	authRepo domain.AuthRepo
	TimeOut  time.Duration
}

func NewAuthUseCase(repo domain.AuthRepo, timeOut time.Duration) domain.AuthUseCase {
	return &authUC{
		authRepo: repo,
		TimeOut:  timeOut,
	}
}

func (au *authUC) Login(ctx context.Context, data *domain.LoginRequest) (*domain.LoginResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, au.TimeOut)
	defer cancel()

	return au.authRepo.Login(ctx, data)
}
