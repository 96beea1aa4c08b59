package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
)

// CardRepository defines the interface for card data access
type CardRepository interface {
	Create(ctx context.Context, card *domain.Card) error
	FindByID(ctx context.Context, boardID, id uuid.UUID) (*domain.Card, error)
	FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Card, error)
	Update(ctx context.Context, card *domain.Card) error
	Delete(ctx context.Context, boardID, id uuid.UUID) error
	FindOrphaned(ctx context.Context) ([]*domain.Card, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) error
}

// cardRepositoryImpl is the GORM implementation of CardRepository
type cardRepositoryImpl struct {
	db *gorm.DB
}

// NewCardRepository creates a new instance of CardRepository
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepositoryImpl{db: db}
}

// Create creates a new card
func (r *cardRepositoryImpl) Create(ctx context.Context, card *domain.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

// FindByID finds a card by ID scoped to its board path
func (r *cardRepositoryImpl) FindByID(ctx context.Context, boardID, id uuid.UUID) (*domain.Card, error) {
	var card domain.Card
	if err := r.db.WithContext(ctx).
		Where("board_id = ? AND id = ?", boardID, id).
		First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// FindByBoard finds all cards within a board
func (r *cardRepositoryImpl) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Card, error) {
	var cards []*domain.Card
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at ASC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// Update saves the full card record
func (r *cardRepositoryImpl) Update(ctx context.Context, card *domain.Card) error {
	return r.db.WithContext(ctx).Save(card).Error
}

// Delete removes a card from a board
func (r *cardRepositoryImpl) Delete(ctx context.Context, boardID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("board_id = ? AND id = ?", boardID, id).
		Delete(&domain.Card{}).Error
}

// FindOrphaned returns cards whose board no longer exists
func (r *cardRepositoryImpl) FindOrphaned(ctx context.Context) ([]*domain.Card, error) {
	var cards []*domain.Card
	if err := r.db.WithContext(ctx).
		Where("board_id NOT IN (?)", r.db.Model(&domain.Board{}).Select("id")).
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// DeleteByIDs removes multiple cards at once
func (r *cardRepositoryImpl) DeleteByIDs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&domain.Card{}).Error
}
