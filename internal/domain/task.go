package domain

import "github.com/google/uuid"

// TaskStatus is both the workflow state and the column a task renders in.
// Transitions are unrestricted in either direction.
type TaskStatus string

const (
	StatusIcebox  TaskStatus = "icebox"
	StatusBacklog TaskStatus = "backlog"
	StatusOngoing TaskStatus = "ongoing"
	StatusReview  TaskStatus = "review"
	StatusDone    TaskStatus = "done"
)

// Statuses lists all task statuses in column order.
var Statuses = []TaskStatus{StatusIcebox, StatusBacklog, StatusOngoing, StatusReview, StatusDone}

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusIcebox, StatusBacklog, StatusOngoing, StatusReview, StatusDone:
		return true
	}
	return false
}

// Task is a unit of work within a card.
type Task struct {
	BaseModel
	CardID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_tasks_card_id" json:"cardId"`
	BoardID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_tasks_board_id" json:"boardId"`
	OwnerID     string     `gorm:"type:varchar(255);not null" json:"ownerId"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      TaskStatus `gorm:"type:varchar(20);not null;default:'icebox';index:idx_tasks_status" json:"status"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}
