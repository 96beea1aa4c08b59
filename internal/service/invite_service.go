package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/mailer"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/response"
)

// InviteService defines the interface for board invitations.
type InviteService interface {
	// InviteMember records an invitation and mails the invitee. The
	// board must exist; mail delivery is best-effort.
	InviteMember(ctx context.Context, actor string, boardID uuid.UUID, email string) error
}

type inviteServiceImpl struct {
	boardRepo  repository.BoardRepository
	inviteRepo repository.InviteRepository
	mail       mailer.Sender
	logger     *zap.Logger
}

// NewInviteService creates a new instance of InviteService
func NewInviteService(
	boardRepo repository.BoardRepository,
	inviteRepo repository.InviteRepository,
	mail mailer.Sender,
	logger *zap.Logger,
) InviteService {
	return &inviteServiceImpl{
		boardRepo:  boardRepo,
		inviteRepo: inviteRepo,
		mail:       mail,
		logger:     logger,
	}
}

func (s *inviteServiceImpl) InviteMember(ctx context.Context, actor string, boardID uuid.UUID, email string) error {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load board", err.Error())
	}

	invite := &domain.Invite{
		BoardID:   boardID,
		Email:     email,
		InvitedBy: actor,
		Status:    domain.InvitePending,
	}
	if err := s.inviteRepo.Create(ctx, invite); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to record invitation", err.Error())
	}

	// the invitation stands even if the mail bounces
	if err := s.mail.SendBoardInvite(email, board.Name, actor); err != nil {
		s.logger.Warn("invite mail delivery failed",
			zap.String("board_id", boardID.String()),
			zap.String("email", email),
			zap.Error(err))
	}

	s.logger.Info("member invited",
		zap.String("board_id", boardID.String()),
		zap.String("email", email),
		zap.String("invited_by", actor))
	return nil
}
