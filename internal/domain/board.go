package domain

// Board is the top-level container, owned by exactly one user by email.
// Deleting a board does not cascade to its cards; the cleanup job sweeps
// orphans on a schedule instead.
type Board struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	OwnerEmail  string `gorm:"type:varchar(255);not null;index:idx_boards_owner_email" json:"owner"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}
