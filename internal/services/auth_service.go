package services

import (
	"context"
	"fmt"
	"strings"

	"ascendops/internal/models/request_models"
	"ascendops/internal/models/response_models"
	"ascendops/internal/repositories"
	"ascendops/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
}

type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthServiceInterface {
	return &AuthService{userRepo: userRepo}
}

// Login matches active accounts only. A wrong email, a wrong password
// and a deactivated account are indistinguishable to the caller.
func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if user == nil || !user.Active {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}

	return &response_models.LoginResponse{
		Token: token,
		User:  toAccountResponse(user),
	}, nil
}
