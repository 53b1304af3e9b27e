package domain

import "context"

type LoginRequest struct {
	Username string `json:"username" valid:"required~Username is required"`
	Password string `json:"password" valid:"required~Password is required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Role     Role   `json:"role"`
	Username string `json:"username"`
}

type AuthRepo interface {
	Login(ctx context.Context, data *LoginRequest) (*LoginResponse, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, data *LoginRequest) (*LoginResponse, error)
}
