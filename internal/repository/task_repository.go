package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, cardID, id uuid.UUID) (*domain.Task, error)
	FindByCard(ctx context.Context, cardID uuid.UUID) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, cardID, id uuid.UUID) error
	FindOrphaned(ctx context.Context) ([]*domain.Task, error)
	DeleteByCardIDs(ctx context.Context, cardIDs []uuid.UUID) error
}

// taskRepositoryImpl is the GORM implementation of TaskRepository
type taskRepositoryImpl struct {
	db *gorm.DB
}

// NewTaskRepository creates a new instance of TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepositoryImpl{db: db}
}

// Create creates a new task
func (r *taskRepositoryImpl) Create(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByID finds a task by ID scoped to its card path
func (r *taskRepositoryImpl) FindByID(ctx context.Context, cardID, id uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.WithContext(ctx).
		Where("card_id = ? AND id = ?", cardID, id).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByCard finds all tasks within a card
func (r *taskRepositoryImpl) FindByCard(ctx context.Context, cardID uuid.UUID) ([]*domain.Task, error) {
	var tasks []*domain.Task
	if err := r.db.WithContext(ctx).
		Where("card_id = ?", cardID).
		Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update saves the full task record. Concurrent updates are
// last-write-wins; there is no version check.
func (r *taskRepositoryImpl) Update(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

// Delete removes a task from a card
func (r *taskRepositoryImpl) Delete(ctx context.Context, cardID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("card_id = ? AND id = ?", cardID, id).
		Delete(&domain.Task{}).Error
}

// FindOrphaned returns tasks whose card no longer exists
func (r *taskRepositoryImpl) FindOrphaned(ctx context.Context) ([]*domain.Task, error) {
	var tasks []*domain.Task
	if err := r.db.WithContext(ctx).
		Where("card_id NOT IN (?)", r.db.Model(&domain.Card{}).Select("id")).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// DeleteByCardIDs removes all tasks belonging to the given cards
func (r *taskRepositoryImpl) DeleteByCardIDs(ctx context.Context, cardIDs []uuid.UUID) error {
	if len(cardIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("card_id IN ?", cardIDs).
		Delete(&domain.Task{}).Error
}
