package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/events"
	"taskboard-api/internal/metrics"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
)

// BoardService defines the interface for board business logic.
// Mutations broadcast to the acting user's board room after the store
// write is acknowledged; correlationID is echoed in the event envelope.
type BoardService interface {
	CreateBoard(ctx context.Context, actor string, req *dto.CreateBoardRequest, correlationID string) (*dto.BoardResponse, error)
	GetBoards(ctx context.Context, actor string) ([]*dto.BoardResponse, error)
	GetBoard(ctx context.Context, boardID uuid.UUID) (*dto.BoardResponse, error)
	UpdateBoard(ctx context.Context, actor string, boardID uuid.UUID, req *dto.UpdateBoardRequest, correlationID string) (*dto.BoardResponse, error)
	DeleteBoard(ctx context.Context, actor string, boardID uuid.UUID, correlationID string) error
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	boardRepo repository.BoardRepository
	publisher events.Publisher
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(
	boardRepo repository.BoardRepository,
	publisher events.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	return &boardServiceImpl{
		boardRepo: boardRepo,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// CreateBoard creates a new board owned by actor
func (s *boardServiceImpl) CreateBoard(ctx context.Context, actor string, req *dto.CreateBoardRequest, correlationID string) (*dto.BoardResponse, error) {
	board := &domain.Board{
		Name:        req.Name,
		Description: req.Description,
		OwnerEmail:  actor,
	}
	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create board", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementBoardCreated()
	}
	resp := dto.ToBoardResponse(board)
	s.publisher.Publish(ctx, events.BoardRoom(actor), events.BoardCreated, resp, correlationID)

	s.logger.Info("board created",
		zap.String("board_id", board.ID.String()),
		zap.String("owner", actor))
	return resp, nil
}

// GetBoards lists the boards owned by actor
func (s *boardServiceImpl) GetBoards(ctx context.Context, actor string) ([]*dto.BoardResponse, error) {
	boards, err := s.boardRepo.FindByOwner(ctx, actor)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list boards", err.Error())
	}

	responses := make([]*dto.BoardResponse, 0, len(boards))
	for _, board := range boards {
		responses = append(responses, dto.ToBoardResponse(board))
	}
	return responses, nil
}

// GetBoard retrieves a single board
func (s *boardServiceImpl) GetBoard(ctx context.Context, boardID uuid.UUID) (*dto.BoardResponse, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}
	return dto.ToBoardResponse(board), nil
}

// UpdateBoard applies the patch to a board. A missing board surfaces as
// a store error, not a 404.
func (s *boardServiceImpl) UpdateBoard(ctx context.Context, actor string, boardID uuid.UUID, req *dto.UpdateBoardRequest, correlationID string) (*dto.BoardResponse, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update board", err.Error())
	}

	if req.Name != nil {
		board.Name = *req.Name
	}
	if req.Description != nil {
		board.Description = *req.Description
	}
	if err := s.boardRepo.Update(ctx, board); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update board", err.Error())
	}

	resp := dto.ToBoardResponse(board)
	s.publisher.Publish(ctx, events.BoardRoom(actor), events.BoardUpdated, resp, correlationID)
	return resp, nil
}

// DeleteBoard removes a board. Deleting an absent board succeeds and
// still broadcasts; cards and tasks are left for the orphan sweep.
func (s *boardServiceImpl) DeleteBoard(ctx context.Context, actor string, boardID uuid.UUID, correlationID string) error {
	if err := s.boardRepo.Delete(ctx, boardID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete board", err.Error())
	}

	s.publisher.Publish(ctx, events.BoardRoom(actor), events.BoardDeleted, boardID.String(), correlationID)

	s.logger.Info("board deleted",
		zap.String("board_id", boardID.String()),
		zap.String("owner", actor))
	return nil
}
