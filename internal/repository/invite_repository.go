package repository

import (
	"context"

	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

// InviteRepository defines the interface for invite data access
type InviteRepository interface {
	Create(ctx context.Context, invite *domain.Invite) error
	DeleteOrphaned(ctx context.Context) (int64, error)
}

// inviteRepositoryImpl is the GORM implementation of InviteRepository
type inviteRepositoryImpl struct {
	db *gorm.DB
}

// NewInviteRepository creates a new instance of InviteRepository
func NewInviteRepository(db *gorm.DB) InviteRepository {
	return &inviteRepositoryImpl{db: db}
}

// Create records a pending invite
func (r *inviteRepositoryImpl) Create(ctx context.Context, invite *domain.Invite) error {
	return r.db.WithContext(ctx).Create(invite).Error
}

// DeleteOrphaned removes invites whose board no longer exists and
// returns how many were removed.
func (r *inviteRepositoryImpl) DeleteOrphaned(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("board_id NOT IN (?)", r.db.Model(&domain.Board{}).Select("id")).
		Delete(&domain.Invite{})
	return result.RowsAffected, result.Error
}
