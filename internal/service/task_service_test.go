package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/dto"
	"taskboard-api/internal/events"
	"taskboard-api/internal/response"
)

func newTaskService(taskRepo *MockTaskRepository, pub *MockPublisher) TaskService {
	return NewTaskService(taskRepo, &MockAssignmentRepository{}, &MockAttachmentRepository{}, pub, nil, zap.NewNop())
}

func existingTask(cardID, taskID uuid.UUID) *MockTaskRepository {
	return &MockTaskRepository{
		FindByIDFunc: func(ctx context.Context, cID, id uuid.UUID) (*domain.Task, error) {
			if cID == cardID && id == taskID {
				return &domain.Task{
					BaseModel: domain.BaseModel{ID: taskID},
					CardID:    cardID,
					Title:     "Ship it",
					Status:    domain.StatusOngoing,
				}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func TestCreateTaskBroadcastsToCardRoom(t *testing.T) {
	cardID := uuid.New()
	taskID := uuid.New()
	taskRepo := &MockTaskRepository{
		CreateFunc: func(ctx context.Context, task *domain.Task) error {
			task.ID = taskID
			return nil
		},
	}
	pub := &MockPublisher{}
	svc := newTaskService(taskRepo, pub)

	resp, err := svc.CreateTask(context.Background(), "a@b.com", uuid.New(), cardID, &dto.CreateTaskRequest{Title: "Ship it"}, "corr-1")
	require.NoError(t, err)
	assert.Equal(t, taskID, resp.ID)
	assert.Equal(t, domain.StatusIcebox, resp.Status, "status defaults to icebox")

	require.Len(t, pub.Published, 1)
	assert.Equal(t, events.CardRoom(cardID.String()), pub.Published[0].Room)
	assert.Equal(t, events.TaskCreated, pub.Published[0].Event)
	assert.Equal(t, "corr-1", pub.Published[0].CorrelationID)
}

func TestUpdateTaskInvalidStatus(t *testing.T) {
	cardID, taskID := uuid.New(), uuid.New()
	pub := &MockPublisher{}
	svc := newTaskService(existingTask(cardID, taskID), pub)

	bad := domain.TaskStatus("sideways")
	_, err := svc.UpdateTask(context.Background(), cardID, taskID, &dto.UpdateTaskRequest{Status: &bad}, "")
	require.Error(t, err)

	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, response.ErrCodeValidation, appErr.Code)
	assert.Empty(t, pub.Published)
}

func TestUpdateTaskStatusMove(t *testing.T) {
	cardID, taskID := uuid.New(), uuid.New()
	pub := &MockPublisher{}
	svc := newTaskService(existingTask(cardID, taskID), pub)

	done := domain.StatusDone
	resp, err := svc.UpdateTask(context.Background(), cardID, taskID, &dto.UpdateTaskRequest{Status: &done}, "corr-2")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDone, resp.Status)
	assert.Equal(t, "Ship it", resp.Title, "omitted fields must be preserved")

	require.Len(t, pub.Published, 1)
	assert.Equal(t, events.TaskUpdated, pub.Published[0].Event)
}

func TestDeleteTaskNotFoundEmitsNothing(t *testing.T) {
	cardID := uuid.New()
	pub := &MockPublisher{}
	svc := newTaskService(existingTask(cardID, uuid.New()), pub)

	err := svc.DeleteTask(context.Background(), cardID, uuid.New(), "")
	require.Error(t, err)

	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, response.ErrCodeNotFound, appErr.Code)
	assert.Empty(t, pub.Published, "failed delete must not broadcast")
}

func TestDeleteTaskBroadcastsBareID(t *testing.T) {
	cardID, taskID := uuid.New(), uuid.New()
	pub := &MockPublisher{}
	svc := newTaskService(existingTask(cardID, taskID), pub)

	err := svc.DeleteTask(context.Background(), cardID, taskID, "corr-3")
	require.NoError(t, err)

	require.Len(t, pub.Published, 1)
	assert.Equal(t, events.TaskDeleted, pub.Published[0].Event)
	assert.Equal(t, taskID.String(), pub.Published[0].Data)
}

func TestAssignMemberBroadcasts(t *testing.T) {
	cardID, taskID := uuid.New(), uuid.New()
	assignmentRepo := &MockAssignmentRepository{}
	pub := &MockPublisher{}
	svc := NewTaskService(existingTask(cardID, taskID), assignmentRepo, &MockAttachmentRepository{}, pub, nil, zap.NewNop())

	resp, err := svc.AssignMember(context.Background(), cardID, taskID, "m@b.com", "")
	require.NoError(t, err)
	assert.Equal(t, "m@b.com", resp.MemberID)

	require.Len(t, pub.Published, 1)
	assert.Equal(t, events.TaskAssigned, pub.Published[0].Event)
	assert.Equal(t, events.CardRoom(cardID.String()), pub.Published[0].Room)
}

func TestUnassignMemberBroadcasts(t *testing.T) {
	cardID, taskID := uuid.New(), uuid.New()
	pub := &MockPublisher{}
	svc := newTaskService(existingTask(cardID, taskID), pub)

	err := svc.UnassignMember(context.Background(), cardID, taskID, "m@b.com", "")
	require.NoError(t, err)

	require.Len(t, pub.Published, 1)
	assert.Equal(t, events.TaskUnassigned, pub.Published[0].Event)
}

func TestAttachGithubRejectsUnknownType(t *testing.T) {
	cardID, taskID := uuid.New(), uuid.New()
	svc := newTaskService(existingTask(cardID, taskID), &MockPublisher{})

	_, err := svc.AttachGithub(context.Background(), cardID, taskID, &dto.AttachGithubRequest{Type: "gist", Number: "1"})
	require.Error(t, err)

	appErr, ok := err.(*response.AppError)
	require.True(t, ok)
	assert.Equal(t, response.ErrCodeValidation, appErr.Code)
}

func TestAttachGithubAcceptsKnownTypes(t *testing.T) {
	cardID, taskID := uuid.New(), uuid.New()
	svc := newTaskService(existingTask(cardID, taskID), &MockPublisher{})

	for _, at := range []domain.AttachmentType{domain.AttachmentPullRequest, domain.AttachmentCommit, domain.AttachmentIssue} {
		resp, err := svc.AttachGithub(context.Background(), cardID, taskID, &dto.AttachGithubRequest{Type: at, Number: "42"})
		require.NoError(t, err)
		assert.Equal(t, at, resp.Type)
	}
}
