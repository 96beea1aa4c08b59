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

// TaskService defines the interface for task business logic. Task
// mutations broadcast to the card's room after the store write is
// acknowledged, so everyone viewing the card converges without polling.
type TaskService interface {
	CreateTask(ctx context.Context, actor string, boardID, cardID uuid.UUID, req *dto.CreateTaskRequest, correlationID string) (*dto.TaskResponse, error)
	GetTasks(ctx context.Context, cardID uuid.UUID) ([]*dto.TaskResponse, error)
	GetTask(ctx context.Context, cardID, taskID uuid.UUID) (*dto.TaskResponse, error)
	UpdateTask(ctx context.Context, cardID, taskID uuid.UUID, req *dto.UpdateTaskRequest, correlationID string) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, cardID, taskID uuid.UUID, correlationID string) error

	AssignMember(ctx context.Context, cardID, taskID uuid.UUID, memberEmail, correlationID string) (*dto.AssignmentResponse, error)
	GetAssignments(ctx context.Context, cardID, taskID uuid.UUID) ([]*dto.AssignmentResponse, error)
	UnassignMember(ctx context.Context, cardID, taskID uuid.UUID, memberEmail, correlationID string) error

	AttachGithub(ctx context.Context, cardID, taskID uuid.UUID, req *dto.AttachGithubRequest) (*dto.GithubAttachmentResponse, error)
	GetGithubAttachments(ctx context.Context, cardID, taskID uuid.UUID) ([]*dto.GithubAttachmentResponse, error)
	DeleteGithubAttachment(ctx context.Context, cardID, taskID, attachmentID uuid.UUID) error
}

// taskServiceImpl is the implementation of TaskService
type taskServiceImpl struct {
	taskRepo       repository.TaskRepository
	assignmentRepo repository.AssignmentRepository
	attachmentRepo repository.AttachmentRepository
	publisher      events.Publisher
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	assignmentRepo repository.AssignmentRepository,
	attachmentRepo repository.AttachmentRepository,
	publisher events.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) TaskService {
	return &taskServiceImpl{
		taskRepo:       taskRepo,
		assignmentRepo: assignmentRepo,
		attachmentRepo: attachmentRepo,
		publisher:      publisher,
		metrics:        m,
		logger:         logger,
	}
}

// CreateTask creates a new task under a card
func (s *taskServiceImpl) CreateTask(ctx context.Context, actor string, boardID, cardID uuid.UUID, req *dto.CreateTaskRequest, correlationID string) (*dto.TaskResponse, error) {
	status := req.Status
	if status == "" {
		status = domain.StatusIcebox
	}
	if !status.Valid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid task status", string(status))
	}

	task := &domain.Task{
		CardID:      cardID,
		BoardID:     boardID,
		OwnerID:     actor,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create task", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementTaskCreated()
	}
	resp := dto.ToTaskResponse(task)
	s.publisher.Publish(ctx, events.CardRoom(cardID.String()), events.TaskCreated, resp, correlationID)

	s.logger.Info("task created",
		zap.String("task_id", task.ID.String()),
		zap.String("card_id", cardID.String()))
	return resp, nil
}

// GetTasks lists the tasks of a card
func (s *taskServiceImpl) GetTasks(ctx context.Context, cardID uuid.UUID) ([]*dto.TaskResponse, error) {
	tasks, err := s.taskRepo.FindByCard(ctx, cardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list tasks", err.Error())
	}

	responses := make([]*dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, dto.ToTaskResponse(task))
	}
	return responses, nil
}

// GetTask retrieves a single task scoped to its card
func (s *taskServiceImpl) GetTask(ctx context.Context, cardID, taskID uuid.UUID) (*dto.TaskResponse, error) {
	task, err := s.findTask(ctx, cardID, taskID)
	if err != nil {
		return nil, err
	}
	return dto.ToTaskResponse(task), nil
}

// UpdateTask applies the patch to a task. Last write wins; no
// version checking.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, cardID, taskID uuid.UUID, req *dto.UpdateTaskRequest, correlationID string) (*dto.TaskResponse, error) {
	task, err := s.findTask(ctx, cardID, taskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, response.NewAppError(response.ErrCodeValidation, "Invalid task status", string(*req.Status))
		}
		task.Status = *req.Status
	}
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update task", err.Error())
	}

	resp := dto.ToTaskResponse(task)
	s.publisher.Publish(ctx, events.CardRoom(cardID.String()), events.TaskUpdated, resp, correlationID)
	return resp, nil
}

// DeleteTask removes a task. Deleting an absent task is a 404 and
// broadcasts nothing.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, cardID, taskID uuid.UUID, correlationID string) error {
	if _, err := s.findTask(ctx, cardID, taskID); err != nil {
		return err
	}
	if err := s.taskRepo.Delete(ctx, cardID, taskID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete task", err.Error())
	}

	s.publisher.Publish(ctx, events.CardRoom(cardID.String()), events.TaskDeleted, taskID.String(), correlationID)

	s.logger.Info("task deleted",
		zap.String("task_id", taskID.String()),
		zap.String("card_id", cardID.String()))
	return nil
}

// AssignMember assigns a member to a task. Assigning twice refreshes
// the assignment timestamp instead of failing.
func (s *taskServiceImpl) AssignMember(ctx context.Context, cardID, taskID uuid.UUID, memberEmail, correlationID string) (*dto.AssignmentResponse, error) {
	if _, err := s.findTask(ctx, cardID, taskID); err != nil {
		return nil, err
	}

	assignment := &domain.Assignment{
		TaskID:      taskID,
		MemberEmail: memberEmail,
	}
	if err := s.assignmentRepo.Upsert(ctx, assignment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to assign member", err.Error())
	}

	resp := dto.ToAssignmentResponse(assignment)
	s.publisher.Publish(ctx, events.CardRoom(cardID.String()), events.TaskAssigned, resp, correlationID)
	return resp, nil
}

// GetAssignments lists the members assigned to a task
func (s *taskServiceImpl) GetAssignments(ctx context.Context, cardID, taskID uuid.UUID) ([]*dto.AssignmentResponse, error) {
	if _, err := s.findTask(ctx, cardID, taskID); err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.FindByTask(ctx, taskID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list assignments", err.Error())
	}

	responses := make([]*dto.AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, dto.ToAssignmentResponse(assignment))
	}
	return responses, nil
}

// UnassignMember removes a member from a task
func (s *taskServiceImpl) UnassignMember(ctx context.Context, cardID, taskID uuid.UUID, memberEmail, correlationID string) error {
	if _, err := s.findTask(ctx, cardID, taskID); err != nil {
		return err
	}
	if err := s.assignmentRepo.Delete(ctx, taskID, memberEmail); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to unassign member", err.Error())
	}

	data := map[string]string{"taskId": taskID.String(), "memberId": memberEmail}
	s.publisher.Publish(ctx, events.CardRoom(cardID.String()), events.TaskUnassigned, data, correlationID)
	return nil
}

// AttachGithub links a pull request, commit or issue to a task
func (s *taskServiceImpl) AttachGithub(ctx context.Context, cardID, taskID uuid.UUID, req *dto.AttachGithubRequest) (*dto.GithubAttachmentResponse, error) {
	if !req.Type.Valid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid attachment type", string(req.Type))
	}
	if _, err := s.findTask(ctx, cardID, taskID); err != nil {
		return nil, err
	}

	attachment := &domain.GithubAttachment{
		TaskID: taskID,
		Type:   req.Type,
		Number: req.Number,
	}
	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to attach github item", err.Error())
	}
	return dto.ToGithubAttachmentResponse(attachment), nil
}

// GetGithubAttachments lists the github items linked to a task
func (s *taskServiceImpl) GetGithubAttachments(ctx context.Context, cardID, taskID uuid.UUID) ([]*dto.GithubAttachmentResponse, error) {
	if _, err := s.findTask(ctx, cardID, taskID); err != nil {
		return nil, err
	}

	attachments, err := s.attachmentRepo.FindByTask(ctx, taskID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list attachments", err.Error())
	}

	responses := make([]*dto.GithubAttachmentResponse, 0, len(attachments))
	for _, attachment := range attachments {
		responses = append(responses, dto.ToGithubAttachmentResponse(attachment))
	}
	return responses, nil
}

// DeleteGithubAttachment unlinks a github item from a task
func (s *taskServiceImpl) DeleteGithubAttachment(ctx context.Context, cardID, taskID, attachmentID uuid.UUID) error {
	if _, err := s.findTask(ctx, cardID, taskID); err != nil {
		return err
	}
	if err := s.attachmentRepo.Delete(ctx, taskID, attachmentID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete attachment", err.Error())
	}
	return nil
}

func (s *taskServiceImpl) findTask(ctx context.Context, cardID, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, cardID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Task not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load task", err.Error())
	}
	return task, nil
}
