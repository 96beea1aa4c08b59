package handler

import (
	"context"

	"github.com/google/uuid"

	"taskboard-api/internal/dto"
)

// MockBoardService is a mock implementation of service.BoardService
type MockBoardService struct {
	CreateBoardFunc func(ctx context.Context, actor string, req *dto.CreateBoardRequest, correlationID string) (*dto.BoardResponse, error)
	GetBoardsFunc   func(ctx context.Context, actor string) ([]*dto.BoardResponse, error)
	GetBoardFunc    func(ctx context.Context, boardID uuid.UUID) (*dto.BoardResponse, error)
	UpdateBoardFunc func(ctx context.Context, actor string, boardID uuid.UUID, req *dto.UpdateBoardRequest, correlationID string) (*dto.BoardResponse, error)
	DeleteBoardFunc func(ctx context.Context, actor string, boardID uuid.UUID, correlationID string) error
}

func (m *MockBoardService) CreateBoard(ctx context.Context, actor string, req *dto.CreateBoardRequest, correlationID string) (*dto.BoardResponse, error) {
	if m.CreateBoardFunc != nil {
		return m.CreateBoardFunc(ctx, actor, req, correlationID)
	}
	return nil, nil
}

func (m *MockBoardService) GetBoards(ctx context.Context, actor string) ([]*dto.BoardResponse, error) {
	if m.GetBoardsFunc != nil {
		return m.GetBoardsFunc(ctx, actor)
	}
	return nil, nil
}

func (m *MockBoardService) GetBoard(ctx context.Context, boardID uuid.UUID) (*dto.BoardResponse, error) {
	if m.GetBoardFunc != nil {
		return m.GetBoardFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockBoardService) UpdateBoard(ctx context.Context, actor string, boardID uuid.UUID, req *dto.UpdateBoardRequest, correlationID string) (*dto.BoardResponse, error) {
	if m.UpdateBoardFunc != nil {
		return m.UpdateBoardFunc(ctx, actor, boardID, req, correlationID)
	}
	return nil, nil
}

func (m *MockBoardService) DeleteBoard(ctx context.Context, actor string, boardID uuid.UUID, correlationID string) error {
	if m.DeleteBoardFunc != nil {
		return m.DeleteBoardFunc(ctx, actor, boardID, correlationID)
	}
	return nil
}

// MockInviteService is a mock implementation of service.InviteService
type MockInviteService struct {
	InviteMemberFunc func(ctx context.Context, actor string, boardID uuid.UUID, email string) error
}

func (m *MockInviteService) InviteMember(ctx context.Context, actor string, boardID uuid.UUID, email string) error {
	if m.InviteMemberFunc != nil {
		return m.InviteMemberFunc(ctx, actor, boardID, email)
	}
	return nil
}

// MockTaskService is a mock implementation of service.TaskService
type MockTaskService struct {
	CreateTaskFunc func(ctx context.Context, actor string, boardID, cardID uuid.UUID, req *dto.CreateTaskRequest, correlationID string) (*dto.TaskResponse, error)
	GetTasksFunc   func(ctx context.Context, cardID uuid.UUID) ([]*dto.TaskResponse, error)
	GetTaskFunc    func(ctx context.Context, cardID, taskID uuid.UUID) (*dto.TaskResponse, error)
	UpdateTaskFunc func(ctx context.Context, cardID, taskID uuid.UUID, req *dto.UpdateTaskRequest, correlationID string) (*dto.TaskResponse, error)
	DeleteTaskFunc func(ctx context.Context, cardID, taskID uuid.UUID, correlationID string) error

	AssignMemberFunc   func(ctx context.Context, cardID, taskID uuid.UUID, memberEmail, correlationID string) (*dto.AssignmentResponse, error)
	GetAssignmentsFunc func(ctx context.Context, cardID, taskID uuid.UUID) ([]*dto.AssignmentResponse, error)
	UnassignMemberFunc func(ctx context.Context, cardID, taskID uuid.UUID, memberEmail, correlationID string) error

	AttachGithubFunc           func(ctx context.Context, cardID, taskID uuid.UUID, req *dto.AttachGithubRequest) (*dto.GithubAttachmentResponse, error)
	GetGithubAttachmentsFunc   func(ctx context.Context, cardID, taskID uuid.UUID) ([]*dto.GithubAttachmentResponse, error)
	DeleteGithubAttachmentFunc func(ctx context.Context, cardID, taskID, attachmentID uuid.UUID) error
}

func (m *MockTaskService) CreateTask(ctx context.Context, actor string, boardID, cardID uuid.UUID, req *dto.CreateTaskRequest, correlationID string) (*dto.TaskResponse, error) {
	if m.CreateTaskFunc != nil {
		return m.CreateTaskFunc(ctx, actor, boardID, cardID, req, correlationID)
	}
	return nil, nil
}

func (m *MockTaskService) GetTasks(ctx context.Context, cardID uuid.UUID) ([]*dto.TaskResponse, error) {
	if m.GetTasksFunc != nil {
		return m.GetTasksFunc(ctx, cardID)
	}
	return nil, nil
}

func (m *MockTaskService) GetTask(ctx context.Context, cardID, taskID uuid.UUID) (*dto.TaskResponse, error) {
	if m.GetTaskFunc != nil {
		return m.GetTaskFunc(ctx, cardID, taskID)
	}
	return nil, nil
}

func (m *MockTaskService) UpdateTask(ctx context.Context, cardID, taskID uuid.UUID, req *dto.UpdateTaskRequest, correlationID string) (*dto.TaskResponse, error) {
	if m.UpdateTaskFunc != nil {
		return m.UpdateTaskFunc(ctx, cardID, taskID, req, correlationID)
	}
	return nil, nil
}

func (m *MockTaskService) DeleteTask(ctx context.Context, cardID, taskID uuid.UUID, correlationID string) error {
	if m.DeleteTaskFunc != nil {
		return m.DeleteTaskFunc(ctx, cardID, taskID, correlationID)
	}
	return nil
}

func (m *MockTaskService) AssignMember(ctx context.Context, cardID, taskID uuid.UUID, memberEmail, correlationID string) (*dto.AssignmentResponse, error) {
	if m.AssignMemberFunc != nil {
		return m.AssignMemberFunc(ctx, cardID, taskID, memberEmail, correlationID)
	}
	return nil, nil
}

func (m *MockTaskService) GetAssignments(ctx context.Context, cardID, taskID uuid.UUID) ([]*dto.AssignmentResponse, error) {
	if m.GetAssignmentsFunc != nil {
		return m.GetAssignmentsFunc(ctx, cardID, taskID)
	}
	return nil, nil
}

func (m *MockTaskService) UnassignMember(ctx context.Context, cardID, taskID uuid.UUID, memberEmail, correlationID string) error {
	if m.UnassignMemberFunc != nil {
		return m.UnassignMemberFunc(ctx, cardID, taskID, memberEmail, correlationID)
	}
	return nil
}

func (m *MockTaskService) AttachGithub(ctx context.Context, cardID, taskID uuid.UUID, req *dto.AttachGithubRequest) (*dto.GithubAttachmentResponse, error) {
	if m.AttachGithubFunc != nil {
		return m.AttachGithubFunc(ctx, cardID, taskID, req)
	}
	return nil, nil
}

func (m *MockTaskService) GetGithubAttachments(ctx context.Context, cardID, taskID uuid.UUID) ([]*dto.GithubAttachmentResponse, error) {
	if m.GetGithubAttachmentsFunc != nil {
		return m.GetGithubAttachmentsFunc(ctx, cardID, taskID)
	}
	return nil, nil
}

func (m *MockTaskService) DeleteGithubAttachment(ctx context.Context, cardID, taskID, attachmentID uuid.UUID) error {
	if m.DeleteGithubAttachmentFunc != nil {
		return m.DeleteGithubAttachmentFunc(ctx, cardID, taskID, attachmentID)
	}
	return nil
}
