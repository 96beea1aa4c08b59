package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/middleware"
	"taskboard-api/internal/response"
)

func newBoardRouter(boardSvc *MockBoardService, inviteSvc *MockInviteService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// stand-in for the auth middleware
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextEmailKey, "owner@b.com")
	})

	h := NewBoardHandler(boardSvc, inviteSvc)
	r.POST("/boards", h.CreateBoard)
	r.GET("/boards", h.GetBoards)
	r.GET("/boards/:boardId", h.GetBoard)
	r.PUT("/boards/:boardId", h.UpdateBoard)
	r.DELETE("/boards/:boardId", h.DeleteBoard)
	r.POST("/boards/:boardId/invite", h.InviteMember)
	return r
}

func TestCreateBoardHandler(t *testing.T) {
	boardID := uuid.New()
	tests := []struct {
		name       string
		body       string
		corrHeader string
		wantStatus int
	}{
		{
			name:       "created",
			body:       `{"name":"Sprint"}`,
			corrHeader: "corr-1",
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing name",
			body:       `{"description":"no name"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotActor, gotCorr string
			svc := &MockBoardService{
				CreateBoardFunc: func(ctx context.Context, actor string, req *dto.CreateBoardRequest, correlationID string) (*dto.BoardResponse, error) {
					gotActor, gotCorr = actor, correlationID
					return &dto.BoardResponse{ID: boardID, Name: req.Name, Owner: actor}, nil
				},
			}
			r := newBoardRouter(svc, &MockInviteService{})

			req := httptest.NewRequest(http.MethodPost, "/boards", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.corrHeader != "" {
				req.Header.Set("X-Correlation-Id", tt.corrHeader)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "owner@b.com", gotActor)
				assert.Equal(t, tt.corrHeader, gotCorr)

				var resp dto.BoardResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, boardID, resp.ID)
				assert.Equal(t, "Sprint", resp.Name)
			}
		})
	}
}

func TestGetBoardHandlerNotFound(t *testing.T) {
	svc := &MockBoardService{
		GetBoardFunc: func(ctx context.Context, boardID uuid.UUID) (*dto.BoardResponse, error) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Board not found", "")
		},
	}
	r := newBoardRouter(svc, &MockInviteService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boards/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, response.ErrCodeNotFound, body.Code)
	assert.Equal(t, "Board not found", body.Error)
}

func TestGetBoardHandlerBadID(t *testing.T) {
	r := newBoardRouter(&MockBoardService{}, &MockInviteService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boards/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteBoardHandler(t *testing.T) {
	var deleted uuid.UUID
	svc := &MockBoardService{
		DeleteBoardFunc: func(ctx context.Context, actor string, boardID uuid.UUID, correlationID string) error {
			deleted = boardID
			return nil
		},
	}
	r := newBoardRouter(svc, &MockInviteService{})

	boardID := uuid.New()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/boards/"+boardID.String(), nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, boardID, deleted)
	assert.Empty(t, w.Body.String())
}

func TestInviteMemberHandlerValidation(t *testing.T) {
	called := false
	invite := &MockInviteService{
		InviteMemberFunc: func(ctx context.Context, actor string, boardID uuid.UUID, email string) error {
			called = true
			return nil
		},
	}
	r := newBoardRouter(&MockBoardService{}, invite)

	// missing email is a 400 before the service is consulted
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/boards/"+uuid.NewString()+"/invite", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/boards/"+uuid.NewString()+"/invite", strings.NewReader(`{"email":"new@b.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}
