package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
)

// UserService exposes the user directory.
type UserService interface {
	GetUsers(ctx context.Context) ([]*dto.UserResponse, error)
	GetUser(ctx context.Context, email string) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, email string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) GetUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list users", err.Error())
	}

	responses := make([]*dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, dto.ToUserResponse(user))
	}
	return responses, nil
}

func (s *userServiceImpl) GetUser(ctx context.Context, email string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load user", err.Error())
	}
	return dto.ToUserResponse(user), nil
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, email string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load user", err.Error())
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update user", err.Error())
	}
	return dto.ToUserResponse(user), nil
}
