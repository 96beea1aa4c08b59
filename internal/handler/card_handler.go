package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

type CardHandler struct {
	cardService service.CardService
}

func NewCardHandler(cardService service.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// CreateCard creates a card under a board.
func (h *CardHandler) CreateCard(c *gin.Context) {
	boardID, ok := pathUUID(c, "boardId")
	if !ok {
		return
	}

	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Card name is required")
		return
	}

	resp, err := h.cardService.CreateCard(c.Request.Context(), boardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, resp)
}

// GetCards lists the cards of a board.
func (h *CardHandler) GetCards(c *gin.Context) {
	boardID, ok := pathUUID(c, "boardId")
	if !ok {
		return
	}

	resp, err := h.cardService.GetCards(c.Request.Context(), boardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resp)
}

// GetCard retrieves one card scoped to its board.
func (h *CardHandler) GetCard(c *gin.Context) {
	boardID, ok := pathUUID(c, "boardId")
	if !ok {
		return
	}
	cardID, ok := pathUUID(c, "cardId")
	if !ok {
		return
	}

	resp, err := h.cardService.GetCard(c.Request.Context(), boardID, cardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resp)
}

// UpdateCard applies a partial update to a card.
func (h *CardHandler) UpdateCard(c *gin.Context) {
	boardID, ok := pathUUID(c, "boardId")
	if !ok {
		return
	}
	cardID, ok := pathUUID(c, "cardId")
	if !ok {
		return
	}

	var req dto.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	resp, err := h.cardService.UpdateCard(c.Request.Context(), boardID, cardID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resp)
}

// DeleteCard removes a card.
func (h *CardHandler) DeleteCard(c *gin.Context) {
	boardID, ok := pathUUID(c, "boardId")
	if !ok {
		return
	}
	cardID, ok := pathUUID(c, "cardId")
	if !ok {
		return
	}

	if err := h.cardService.DeleteCard(c.Request.Context(), boardID, cardID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusNoContent, nil)
}
