// Package boardclient is a Go client for the taskboard API. Besides
// plain REST calls it keeps a live, event-reconciled view of one card's
// task list, which is what the drag-and-drop board UI runs on.
package boardclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// correlationHeader tags mutating requests so the server echoes the
// value in the resulting broadcast.
const correlationHeader = "X-Correlation-Id"

// Task statuses double as board columns.
const (
	StatusIcebox  = "icebox"
	StatusBacklog = "backlog"
	StatusOngoing = "ongoing"
	StatusReview  = "review"
	StatusDone    = "done"
)

// Statuses lists the board columns in render order.
var Statuses = []string{StatusIcebox, StatusBacklog, StatusOngoing, StatusReview, StatusDone}

func validStatus(s string) bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Task is the task wire format.
type Task struct {
	ID          string    `json:"id"`
	CardID      string    `json:"cardId"`
	BoardID     string    `json:"boardId"`
	OwnerID     string    `json:"ownerId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTask is the payload for creating a task.
type NewTask struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

// TaskPatch is a partial task update. Nil fields are left untouched by
// the server.
type TaskPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// APIError is a non-2xx reply from the server.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"error"`
	Detail     string `json:"detail"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// Client handles all communication with the taskboard backend.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// New creates a client. token is the Bearer token from signin.
func New(baseURL, token string) *Client {
	return &Client{
		BaseURL:    baseURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// do is the single helper for API requests. out may be nil for replies
// without a body.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}, correlationID string) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	if correlationID != "" {
		req.Header.Set(correlationHeader, correlationID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func taskBasePath(boardID, cardID string) string {
	return fmt.Sprintf("/boards/%s/cards/%s/tasks", boardID, cardID)
}

// ListTasks fetches every task of a card.
func (c *Client) ListTasks(ctx context.Context, boardID, cardID string) ([]Task, error) {
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, taskBasePath(boardID, cardID), nil, &tasks, ""); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task under a card.
func (c *Client) CreateTask(ctx context.Context, boardID, cardID string, req NewTask, correlationID string) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPost, taskBasePath(boardID, cardID), req, &task, correlationID); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies a partial update to a task.
func (c *Client) UpdateTask(ctx context.Context, boardID, cardID, taskID string, patch TaskPatch, correlationID string) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPut, taskBasePath(boardID, cardID)+"/"+taskID, patch, &task, correlationID); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, boardID, cardID, taskID string, correlationID string) error {
	return c.do(ctx, http.MethodDelete, taskBasePath(boardID, cardID)+"/"+taskID, nil, nil, correlationID)
}
