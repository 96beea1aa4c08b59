package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Assignment links a task to a member identifier. The member is an email
// string, not a validated user reference.
type Assignment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	TaskID      uuid.UUID `gorm:"type:uuid;not null;index:idx_assignments_task_id;uniqueIndex:uq_assignments_task_member" json:"taskId"`
	MemberEmail string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_assignments_task_member" json:"memberId"`
	AssignedAt  time.Time `gorm:"type:timestamp;not null" json:"assignedAt"`
}

// BeforeCreate assigns the identifier and timestamp app-side
func (a *Assignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.AssignedAt.IsZero() {
		a.AssignedAt = time.Now().UTC()
	}
	return nil
}

// TableName specifies the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}
