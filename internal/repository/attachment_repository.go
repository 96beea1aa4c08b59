package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

// AttachmentRepository defines the interface for GitHub attachment data access
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *domain.GithubAttachment) error
	FindByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.GithubAttachment, error)
	Delete(ctx context.Context, taskID, id uuid.UUID) error
}

// attachmentRepositoryImpl is the GORM implementation of AttachmentRepository
type attachmentRepositoryImpl struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new instance of AttachmentRepository
func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &attachmentRepositoryImpl{db: db}
}

// Create creates a new attachment record
func (r *attachmentRepositoryImpl) Create(ctx context.Context, attachment *domain.GithubAttachment) error {
	return r.db.WithContext(ctx).Create(attachment).Error
}

// FindByTask finds all attachments on a task
func (r *attachmentRepositoryImpl) FindByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.GithubAttachment, error) {
	var attachments []*domain.GithubAttachment
	if err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&attachments).Error; err != nil {
		return nil, err
	}
	return attachments, nil
}

// Delete removes an attachment from a task
func (r *attachmentRepositoryImpl) Delete(ctx context.Context, taskID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("task_id = ? AND id = ?", taskID, id).
		Delete(&domain.GithubAttachment{}).Error
}
