package dto

import (
	"time"

	"taskboard-api/internal/domain"
)

// UpdateUserRequest represents a partial user profile update
type UpdateUserRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=255"`
	AvatarURL *string `json:"avatar" binding:"omitempty,max=2000"`
}

// UserResponse represents the user wire format. The verification code is
// never exposed.
type UserResponse struct {
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	AvatarURL string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain user to its wire format
func ToUserResponse(u *domain.User) *UserResponse {
	return &UserResponse{
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}
