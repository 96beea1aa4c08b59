package domain

import "github.com/google/uuid"

// InviteStatus is write-only today: no acceptance flow mutates it.
type InviteStatus string

const (
	InvitePending InviteStatus = "pending"
)

// Invite records that a user was invited to a board by email.
type Invite struct {
	BaseModel
	BoardID   uuid.UUID    `gorm:"type:uuid;not null;index:idx_invites_board_id" json:"boardId"`
	Email     string       `gorm:"type:varchar(255);not null" json:"email"`
	InvitedBy string       `gorm:"type:varchar(255);not null" json:"invitedBy"`
	Status    InviteStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
}

// TableName specifies the table name for Invite
func (Invite) TableName() string {
	return "invites"
}
