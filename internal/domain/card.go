package domain

import "github.com/google/uuid"

// Card is a container within a board. Scoping is by board path only;
// there is no per-card ownership check.
type Card struct {
	BaseModel
	BoardID     uuid.UUID `gorm:"type:uuid;not null;index:idx_cards_board_id" json:"boardId"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
}

// TableName specifies the table name for Card
func (Card) TableName() string {
	return "cards"
}
