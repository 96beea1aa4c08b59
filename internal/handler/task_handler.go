package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard-api/internal/dto"
	"taskboard-api/internal/response"
	"taskboard-api/internal/service"
)

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTask creates a task under a card.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	boardID, ok := pathUUID(c, "boardId")
	if !ok {
		return
	}
	cardID, ok := pathUUID(c, "cardId")
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Task title is required")
		return
	}

	resp, err := h.taskService.CreateTask(c.Request.Context(), actorEmail(c), boardID, cardID, &req, correlationID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, resp)
}

// GetTasks lists the tasks of a card.
func (h *TaskHandler) GetTasks(c *gin.Context) {
	cardID, ok := pathUUID(c, "cardId")
	if !ok {
		return
	}

	resp, err := h.taskService.GetTasks(c.Request.Context(), cardID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resp)
}

// GetTask retrieves one task scoped to its card.
func (h *TaskHandler) GetTask(c *gin.Context) {
	cardID, ok := pathUUID(c, "cardId")
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}

	resp, err := h.taskService.GetTask(c.Request.Context(), cardID, taskID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resp)
}

// UpdateTask applies a partial update to a task.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	cardID, ok := pathUUID(c, "cardId")
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	resp, err := h.taskService.UpdateTask(c.Request.Context(), cardID, taskID, &req, correlationID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resp)
}

// DeleteTask removes a task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	cardID, ok := pathUUID(c, "cardId")
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), cardID, taskID, correlationID(c)); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusNoContent, nil)
}

// AssignMember assigns a member to a task.
func (h *TaskHandler) AssignMember(c *gin.Context) {
	cardID, ok := pathUUID(c, "cardId")
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}

	var req dto.AssignMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "A valid member email is required")
		return
	}

	resp, err := h.taskService.AssignMember(c.Request.Context(), cardID, taskID, req.MemberID, correlationID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, resp)
}

// GetAssignments lists the members assigned to a task.
func (h *TaskHandler) GetAssignments(c *gin.Context) {
	cardID, ok := pathUUID(c, "cardId")
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}

	resp, err := h.taskService.GetAssignments(c.Request.Context(), cardID, taskID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resp)
}

// UnassignMember removes a member from a task.
func (h *TaskHandler) UnassignMember(c *gin.Context) {
	cardID, ok := pathUUID(c, "cardId")
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}

	if err := h.taskService.UnassignMember(c.Request.Context(), cardID, taskID, c.Param("memberId"), correlationID(c)); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusNoContent, nil)
}

// AttachGithub links a GitHub object to a task.
func (h *TaskHandler) AttachGithub(c *gin.Context) {
	cardID, ok := pathUUID(c, "cardId")
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}

	var req dto.AttachGithubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Attachment type and number are required")
		return
	}

	resp, err := h.taskService.AttachGithub(c.Request.Context(), cardID, taskID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, resp)
}

// GetGithubAttachments lists the GitHub objects linked to a task.
func (h *TaskHandler) GetGithubAttachments(c *gin.Context) {
	cardID, ok := pathUUID(c, "cardId")
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}

	resp, err := h.taskService.GetGithubAttachments(c.Request.Context(), cardID, taskID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, resp)
}

// DeleteGithubAttachment unlinks a GitHub object from a task.
func (h *TaskHandler) DeleteGithubAttachment(c *gin.Context) {
	cardID, ok := pathUUID(c, "cardId")
	if !ok {
		return
	}
	taskID, ok := pathUUID(c, "taskId")
	if !ok {
		return
	}
	attachmentID, ok := pathUUID(c, "attachmentId")
	if !ok {
		return
	}

	if err := h.taskService.DeleteGithubAttachment(c.Request.Context(), cardID, taskID, attachmentID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusNoContent, nil)
}
