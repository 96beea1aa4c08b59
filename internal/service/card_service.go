package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
)

// CardService defines the interface for card business logic. Card
// mutations are not broadcast; clients learn about them on refetch.
type CardService interface {
	CreateCard(ctx context.Context, boardID uuid.UUID, req *dto.CreateCardRequest) (*dto.CardResponse, error)
	GetCards(ctx context.Context, boardID uuid.UUID) ([]*dto.CardResponse, error)
	GetCard(ctx context.Context, boardID, cardID uuid.UUID) (*dto.CardResponse, error)
	UpdateCard(ctx context.Context, boardID, cardID uuid.UUID, req *dto.UpdateCardRequest) (*dto.CardResponse, error)
	DeleteCard(ctx context.Context, boardID, cardID uuid.UUID) error
}

// cardServiceImpl is the implementation of CardService
type cardServiceImpl struct {
	cardRepo repository.CardRepository
	logger   *zap.Logger
}

// NewCardService creates a new instance of CardService
func NewCardService(cardRepo repository.CardRepository, logger *zap.Logger) CardService {
	return &cardServiceImpl{cardRepo: cardRepo, logger: logger}
}

// CreateCard creates a new card under a board
func (s *cardServiceImpl) CreateCard(ctx context.Context, boardID uuid.UUID, req *dto.CreateCardRequest) (*dto.CardResponse, error) {
	card := &domain.Card{
		BoardID:     boardID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.cardRepo.Create(ctx, card); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create card", err.Error())
	}

	s.logger.Info("card created",
		zap.String("card_id", card.ID.String()),
		zap.String("board_id", boardID.String()))
	return dto.ToCardResponse(card), nil
}

// GetCards lists the cards of a board
func (s *cardServiceImpl) GetCards(ctx context.Context, boardID uuid.UUID) ([]*dto.CardResponse, error) {
	cards, err := s.cardRepo.FindByBoard(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list cards", err.Error())
	}

	responses := make([]*dto.CardResponse, 0, len(cards))
	for _, card := range cards {
		responses = append(responses, dto.ToCardResponse(card))
	}
	return responses, nil
}

// GetCard retrieves a single card scoped to its board
func (s *cardServiceImpl) GetCard(ctx context.Context, boardID, cardID uuid.UUID) (*dto.CardResponse, error) {
	card, err := s.cardRepo.FindByID(ctx, boardID, cardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Card not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load card", err.Error())
	}
	return dto.ToCardResponse(card), nil
}

// UpdateCard applies the patch to a card. A missing card surfaces as a
// store error, not a 404.
func (s *cardServiceImpl) UpdateCard(ctx context.Context, boardID, cardID uuid.UUID, req *dto.UpdateCardRequest) (*dto.CardResponse, error) {
	card, err := s.cardRepo.FindByID(ctx, boardID, cardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update card", err.Error())
	}

	if req.Name != nil {
		card.Name = *req.Name
	}
	if req.Description != nil {
		card.Description = *req.Description
	}
	if err := s.cardRepo.Update(ctx, card); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update card", err.Error())
	}
	return dto.ToCardResponse(card), nil
}

// DeleteCard removes a card. Deleting an absent card succeeds; its
// tasks are left for the orphan sweep.
func (s *cardServiceImpl) DeleteCard(ctx context.Context, boardID, cardID uuid.UUID) error {
	if err := s.cardRepo.Delete(ctx, boardID, cardID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete card", err.Error())
	}

	s.logger.Info("card deleted",
		zap.String("card_id", cardID.String()),
		zap.String("board_id", boardID.String()))
	return nil
}
