package dto

import (
	"time"

	"github.com/google/uuid"

	"taskboard-api/internal/domain"
)

// CreateCardRequest represents the request to create a card within a board
type CreateCardRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
}

// UpdateCardRequest represents a partial card update. All fields are optional.
type UpdateCardRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// CardResponse represents the card wire format
type CardResponse struct {
	ID          uuid.UUID `json:"id"`
	BoardID     uuid.UUID `json:"boardId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToCardResponse converts a domain card to its wire format
func ToCardResponse(c *domain.Card) *CardResponse {
	return &CardResponse{
		ID:          c.ID,
		BoardID:     c.BoardID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}
