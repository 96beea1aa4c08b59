package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/middleware"
	"taskboard-api/internal/response"
)

func newTaskRouter(svc *MockTaskService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextEmailKey, "a@b.com")
	})

	h := NewTaskHandler(svc)
	tasks := r.Group("/boards/:boardId/cards/:cardId/tasks")
	{
		tasks.POST("", h.CreateTask)
		tasks.GET("", h.GetTasks)
		tasks.GET("/:taskId", h.GetTask)
		tasks.PUT("/:taskId", h.UpdateTask)
		tasks.DELETE("/:taskId", h.DeleteTask)
		tasks.POST("/:taskId/assign", h.AssignMember)
		tasks.DELETE("/:taskId/assign/:memberId", h.UnassignMember)
	}
	return r
}

func taskPath(boardID, cardID uuid.UUID, rest string) string {
	return fmt.Sprintf("/boards/%s/cards/%s/tasks%s", boardID, cardID, rest)
}

func TestCreateTaskHandler(t *testing.T) {
	boardID, cardID, taskID := uuid.New(), uuid.New(), uuid.New()
	svc := &MockTaskService{
		CreateTaskFunc: func(ctx context.Context, actor string, bID, cID uuid.UUID, req *dto.CreateTaskRequest, correlationID string) (*dto.TaskResponse, error) {
			assert.Equal(t, "a@b.com", actor)
			assert.Equal(t, boardID, bID)
			assert.Equal(t, cardID, cID)
			return &dto.TaskResponse{ID: taskID, CardID: cID, Title: req.Title, Status: domain.StatusIcebox}, nil
		},
	}
	r := newTaskRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, taskPath(boardID, cardID, ""), strings.NewReader(`{"title":"Ship it"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, taskID, resp.ID)
	assert.Equal(t, domain.StatusIcebox, resp.Status)
}

func TestCreateTaskHandlerRejectsBadStatus(t *testing.T) {
	r := newTaskRouter(&MockTaskService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, taskPath(uuid.New(), uuid.New(), ""), strings.NewReader(`{"title":"x","status":"sideways"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateTaskHandlerStatusOnly(t *testing.T) {
	boardID, cardID, taskID := uuid.New(), uuid.New(), uuid.New()
	var gotPatch *dto.UpdateTaskRequest
	svc := &MockTaskService{
		UpdateTaskFunc: func(ctx context.Context, cID, tID uuid.UUID, req *dto.UpdateTaskRequest, correlationID string) (*dto.TaskResponse, error) {
			gotPatch = req
			return &dto.TaskResponse{ID: tID, CardID: cID, Title: "kept", Status: *req.Status}, nil
		},
	}
	r := newTaskRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, taskPath(boardID, cardID, "/"+taskID.String()), strings.NewReader(`{"status":"done"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotPatch)
	assert.Nil(t, gotPatch.Title, "omitted fields must stay nil")
	require.NotNil(t, gotPatch.Status)
	assert.Equal(t, domain.StatusDone, *gotPatch.Status)
}

func TestDeleteTaskHandlerNotFound(t *testing.T) {
	svc := &MockTaskService{
		DeleteTaskFunc: func(ctx context.Context, cardID, taskID uuid.UUID, correlationID string) error {
			return response.NewAppError(response.ErrCodeNotFound, "Task not found", "")
		},
	}
	r := newTaskRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, taskPath(uuid.New(), uuid.New(), "/"+uuid.NewString()), nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAssignMemberHandler(t *testing.T) {
	cardID, taskID := uuid.New(), uuid.New()
	svc := &MockTaskService{
		AssignMemberFunc: func(ctx context.Context, cID, tID uuid.UUID, memberEmail, correlationID string) (*dto.AssignmentResponse, error) {
			return &dto.AssignmentResponse{TaskID: tID, MemberID: memberEmail}, nil
		},
	}
	r := newTaskRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, taskPath(uuid.New(), cardID, "/"+taskID.String()+"/assign"), strings.NewReader(`{"memberId":"m@b.com"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AssignmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "m@b.com", resp.MemberID)
}

func TestUnassignMemberHandlerPassesEmail(t *testing.T) {
	var gotMember string
	svc := &MockTaskService{
		UnassignMemberFunc: func(ctx context.Context, cardID, taskID uuid.UUID, memberEmail, correlationID string) error {
			gotMember = memberEmail
			return nil
		},
	}
	r := newTaskRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, taskPath(uuid.New(), uuid.New(), "/"+uuid.NewString()+"/assign/m@b.com"), nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "m@b.com", gotMember)
}
