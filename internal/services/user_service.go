package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"ascendops/internal/auth"
	"ascendops/internal/models/db_models"
	"ascendops/internal/models/request_models"
	"ascendops/internal/models/response_models"
	"ascendops/internal/repositories"
	"ascendops/pkg/utils"
)

type UserServiceInterface interface {
	List(ctx context.Context, actor auth.Actor, includeInactive bool) ([]response_models.AccountResponse, error)
	Create(ctx context.Context, actor auth.Actor, request request_models.CreateUserRequest) (*response_models.AccountResponse, error)
	ToggleActive(ctx context.Context, actor auth.Actor, userID string) (*response_models.AccountResponse, error)
	ChangeRole(ctx context.Context, actor auth.Actor, userID string, role string) (*response_models.AccountResponse, error)
	BootstrapFounder(ctx context.Context, request request_models.BootstrapFounderRequest) (*response_models.AccountResponse, error)
}

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserServiceInterface {
	return &UserService{userRepo: userRepo}
}

func (u *UserService) List(ctx context.Context, actor auth.Actor, includeInactive bool) ([]response_models.AccountResponse, error) {
	if err := auth.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	var (
		users []db_models.User
		err   error
	)
	if includeInactive {
		users, err = u.userRepo.ListAll(ctx)
	} else {
		users, err = u.userRepo.ListActive(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	out := make([]response_models.AccountResponse, 0, len(users))
	for i := range users {
		out = append(out, toAccountResponse(&users[i]))
	}
	return out, nil
}

func (u *UserService) Create(ctx context.Context, actor auth.Actor, request request_models.CreateUserRequest) (*response_models.AccountResponse, error) {
	if err := auth.RequireFounder(actor); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(request.Name)
	email := strings.ToLower(strings.TrimSpace(request.Email))
	if name == "" || email == "" || request.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", utils.ErrValidation)
	}

	role := db_models.RoleFreelancer
	if request.Role != "" {
		role = db_models.Role(request.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("%w: role must be founder or freelancer", utils.ErrValidation)
		}
	}

	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return nil, utils.ErrEmailTaken
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	active := true
	if request.Active != nil {
		active = *request.Active
	}

	user := &db_models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Active:       active,
	}
	if err := u.userRepo.Insert(ctx, user); err != nil {
		if errors.Is(err, utils.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	resp := toAccountResponse(user)
	return &resp, nil
}

func (u *UserService) ToggleActive(ctx context.Context, actor auth.Actor, userID string) (*response_models.AccountResponse, error) {
	if err := auth.RequireFounder(actor); err != nil {
		return nil, err
	}

	user, err := u.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Active = !user.Active
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	resp := toAccountResponse(user)
	return &resp, nil
}

func (u *UserService) ChangeRole(ctx context.Context, actor auth.Actor, userID string, role string) (*response_models.AccountResponse, error) {
	if err := auth.RequireFounder(actor); err != nil {
		return nil, err
	}

	newRole := db_models.Role(role)
	if !newRole.Valid() {
		return nil, fmt.Errorf("%w: role must be founder or freelancer", utils.ErrValidation)
	}

	user, err := u.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Role = newRole
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	resp := toAccountResponse(user)
	return &resp, nil
}

// BootstrapFounder seeds the first founder account. It runs from the
// bootstrap command before any authenticated actor exists, so it takes
// none. Re-running with a known email reports the conflict instead of
// creating a duplicate.
func (u *UserService) BootstrapFounder(ctx context.Context, request request_models.BootstrapFounderRequest) (*response_models.AccountResponse, error) {
	name := strings.TrimSpace(request.Name)
	email := strings.ToLower(strings.TrimSpace(request.Email))
	if name == "" || email == "" || request.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", utils.ErrValidation)
	}

	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return nil, utils.ErrEmailTaken
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &db_models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         db_models.RoleFounder,
		Active:       true,
	}
	if err := u.userRepo.Insert(ctx, user); err != nil {
		if errors.Is(err, utils.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	resp := toAccountResponse(user)
	return &resp, nil
}

func (u *UserService) findUser(ctx context.Context, userID string) (*db_models.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("%w: invalid user id", utils.ErrValidation)
	}
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %w", utils.ErrNotFound)
	}
	return user, nil
}

func toAccountResponse(user *db_models.User) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:     user.ID.String(),
		Name:   user.Name,
		Email:  user.Email,
		Role:   string(user.Role),
		Active: user.Active,
	}
}
