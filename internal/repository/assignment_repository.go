package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskboard-api/internal/domain"
)

// AssignmentRepository defines the interface for assignment data access
type AssignmentRepository interface {
	Upsert(ctx context.Context, assignment *domain.Assignment) error
	FindByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.Assignment, error)
	Delete(ctx context.Context, taskID uuid.UUID, memberEmail string) error
}

// assignmentRepositoryImpl is the GORM implementation of AssignmentRepository
type assignmentRepositoryImpl struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new instance of AssignmentRepository
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

// Upsert creates the assignment or refreshes assigned_at on a repeat
// assign of the same member.
func (r *assignmentRepositoryImpl) Upsert(ctx context.Context, assignment *domain.Assignment) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "task_id"}, {Name: "member_email"}},
			DoUpdates: clause.AssignmentColumns([]string{"assigned_at"}),
		}).
		Create(assignment).Error
}

// FindByTask finds all assignments on a task
func (r *assignmentRepositoryImpl) FindByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.Assignment, error) {
	var assignments []*domain.Assignment
	if err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("assigned_at ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// Delete removes one member's assignment from a task
func (r *assignmentRepositoryImpl) Delete(ctx context.Context, taskID uuid.UUID, memberEmail string) error {
	return r.db.WithContext(ctx).
		Where("task_id = ? AND member_email = ?", taskID, memberEmail).
		Delete(&domain.Assignment{}).Error
}
