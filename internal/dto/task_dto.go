package dto

import (
	"time"

	"github.com/google/uuid"

	"taskboard-api/internal/domain"
)

// CreateTaskRequest represents the request to create a task within a card
type CreateTaskRequest struct {
	Title       string            `json:"title" binding:"required,min=1,max=255"`
	Description string            `json:"description" binding:"max=4000"`
	Status      domain.TaskStatus `json:"status" binding:"omitempty,oneof=icebox backlog ongoing review done"`
}

// UpdateTaskRequest represents a partial task update. All fields are optional;
// a drag to another column sends only Status.
type UpdateTaskRequest struct {
	Title       *string            `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string            `json:"description" binding:"omitempty,max=4000"`
	Status      *domain.TaskStatus `json:"status" binding:"omitempty,oneof=icebox backlog ongoing review done"`
}

// TaskResponse represents the task wire format
type TaskResponse struct {
	ID          uuid.UUID         `json:"id"`
	CardID      uuid.UUID         `json:"cardId"`
	BoardID     uuid.UUID         `json:"boardId"`
	OwnerID     string            `json:"ownerId"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      domain.TaskStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// ToTaskResponse converts a domain task to its wire format
func ToTaskResponse(t *domain.Task) *TaskResponse {
	return &TaskResponse{
		ID:          t.ID,
		CardID:      t.CardID,
		BoardID:     t.BoardID,
		OwnerID:     t.OwnerID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
	}
}

// AssignMemberRequest assigns a member (by email) to a task
type AssignMemberRequest struct {
	MemberID string `json:"memberId" binding:"required,email"`
}

// AssignmentResponse represents the assignment wire format
type AssignmentResponse struct {
	TaskID     uuid.UUID `json:"taskId"`
	MemberID   string    `json:"memberId"`
	AssignedAt time.Time `json:"assignedAt"`
}

// ToAssignmentResponse converts a domain assignment to its wire format
func ToAssignmentResponse(a *domain.Assignment) *AssignmentResponse {
	return &AssignmentResponse{
		TaskID:     a.TaskID,
		MemberID:   a.MemberEmail,
		AssignedAt: a.AssignedAt,
	}
}
