package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

type BoardHandler struct {
	boardService  service.BoardService
	inviteService service.InviteService
}

func NewBoardHandler(boardService service.BoardService, inviteService service.InviteService) *BoardHandler {
	return &BoardHandler{
		boardService:  boardService,
		inviteService: inviteService,
	}
}

// CreateBoard creates a board owned by the authenticated user.
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Board name is required")
		return
	}

	resp, err := h.boardService.CreateBoard(c.Request.Context(), actorEmail(c), &req, correlationID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, resp)
}

// GetBoards lists the authenticated user's boards.
func (h *BoardHandler) GetBoards(c *gin.Context) {
	resp, err := h.boardService.GetBoards(c.Request.Context(), actorEmail(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resp)
}

// GetBoard retrieves one board by id.
func (h *BoardHandler) GetBoard(c *gin.Context) {
	boardID, ok := pathUUID(c, "boardId")
	if !ok {
		return
	}

	resp, err := h.boardService.GetBoard(c.Request.Context(), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resp)
}

// UpdateBoard applies a partial update to a board.
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	boardID, ok := pathUUID(c, "boardId")
	if !ok {
		return
	}

	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	resp, err := h.boardService.UpdateBoard(c.Request.Context(), actorEmail(c), boardID, &req, correlationID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resp)
}

// DeleteBoard removes a board.
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	boardID, ok := pathUUID(c, "boardId")
	if !ok {
		return
	}

	if err := h.boardService.DeleteBoard(c.Request.Context(), actorEmail(c), boardID, correlationID(c)); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusNoContent, nil)
}

// InviteMember invites an email address to a board.
func (h *BoardHandler) InviteMember(c *gin.Context) {
	boardID, ok := pathUUID(c, "boardId")
	if !ok {
		return
	}

	var req dto.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "A valid invitee email is required")
		return
	}

	if err := h.inviteService.InviteMember(c.Request.Context(), actorEmail(c), boardID, req.Email); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, dto.MessageResponse{Message: "Invitation sent"})
}
