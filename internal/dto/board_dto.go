package dto

import (
	"time"

	"github.com/google/uuid"

	"taskboard-api/internal/domain"
)

// CreateBoardRequest represents the request to create a new board
type CreateBoardRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255" example:"Alpha"`
	Description string `json:"description" binding:"max=2000" example:"Launch planning"`
}

// UpdateBoardRequest represents a partial board update. All fields are optional.
type UpdateBoardRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// BoardResponse represents the board wire format
type BoardResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Owner       string    `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToBoardResponse converts a domain board to its wire format
func ToBoardResponse(b *domain.Board) *BoardResponse {
	return &BoardResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Owner:       b.OwnerEmail,
		CreatedAt:   b.CreatedAt,
	}
}

// InviteRequest invites a user to a board by email
type InviteRequest struct {
	Email string `json:"email" binding:"required,email"`
}
